package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        string
		want      Level
		expectErr bool
	}{
		{in: "error", want: LevelError},
		{in: "warn", want: LevelWarn},
		{in: "warning", want: LevelWarn},
		{in: "info", want: LevelInfo},
		{in: "debug", want: LevelDebug},
		{in: "DEBUG", want: LevelDebug},
		{in: "trace", expectErr: true},
		{in: "", expectErr: true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.in)
			if tt.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "unknown", Level(200).String())
}

func TestLevel_Roundtrip(t *testing.T) {
	t.Parallel()

	for _, level := range []Level{LevelError, LevelWarn, LevelInfo, LevelDebug} {
		parsed, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "client", Value: uint16(3)}, Uint16("client", 3))
	assert.Equal(t, Field{Key: "tx", Value: uint32(9)}, Uint32("tx", 9))
	assert.Equal(t, Field{Key: "locked", Value: true}, Bool("locked", true))

	errField := Err(assert.AnError)
	assert.Equal(t, "error", errField.Key)
	assert.Equal(t, assert.AnError, errField.Value)
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), LevelError, "dropped", String("k", "v"))
	})
	assert.Equal(t, logger, logger.With(Int("n", 1)))
	assert.False(t, logger.Enabled(LevelError))
	assert.NoError(t, logger.Sync(context.Background()))
}
