// Package log defines the logging interface and typed fields used for the
// diagnostic channel. Replay diagnostics must never mix with the primary
// output stream, so implementations (such as the zaplog package) write
// somewhere other than stdout.
package log

import (
	"context"
	"fmt"
	"strings"
)

// Logger is the diagnostic logging interface.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level represents the severity of a log entry. Lower numeric values indicate
// higher severity; a logger's level acts as a verbosity ceiling.
type Level uint8

const (
	// LevelError emits only errors.
	LevelError Level = iota
	// LevelWarn adds warnings, including per-record rejections.
	LevelWarn
	// LevelInfo adds replay lifecycle messages.
	LevelInfo
	// LevelDebug adds per-record tracing.
	LevelDebug
)

// String returns the string representation of a log level.
func (level Level) String() string {
	switch level {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel takes a string level and returns the Level constant.
func ParseLevel(lvl string) (Level, error) {
	switch strings.ToLower(lvl) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	var l Level

	return l, fmt.Errorf("not a valid level: %q", lvl)
}

// NewNop returns a Logger that discards every event. Useful in tests and as
// a safe default when no diagnostics are wanted.
//
//nolint:ireturn
func NewNop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Log(context.Context, Level, string, ...Field) {}

//nolint:ireturn
func (nopLogger) With(...Field) Logger       { return nopLogger{} }
func (nopLogger) Enabled(Level) bool         { return false }
func (nopLogger) Sync(context.Context) error { return nil }

// Field is a strongly-typed key/value attribute attached to a log event.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Uint16 creates a field for client identifiers.
func Uint16(key string, value uint16) Field {
	return Field{Key: key, Value: value}
}

// Uint32 creates a field for transaction identifiers.
func Uint32(key string, value uint32) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates the conventional `error` field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
