package replay

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hameerabbasi/payment-engine/csvio"
	"github.com/hameerabbasi/payment-engine/engine"
	"github.com/hameerabbasi/payment-engine/ledger"
	"github.com/hameerabbasi/payment-engine/log"
)

func runCSV(t *testing.T, input string) (Summary, *ledger.Ledger, error) {
	t.Helper()

	l := ledger.New()
	eng := engine.New(l, engine.Policy{})
	summary, err := Run(context.Background(), csvio.NewReader(strings.NewReader(input)), eng, log.NewNop())

	return summary, l, err
}

func TestRun_FullLifecycle(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,10.0",
		"deposit,2,2,20.0",
		"withdrawal,1,3,4.0",
		"dispute,2,2,",
		"chargeback,2,2,",
	}, "\n")

	summary, l, err := runCSV(t, input)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Applied)
	assert.Zero(t, summary.Rejected())

	one, ok := l.Get(1)
	require.True(t, ok)
	assert.True(t, one.Available.Equal(decimal.RequireFromString("6")))
	assert.False(t, one.Locked)

	two, ok := l.Get(2)
	require.True(t, ok)
	assert.True(t, two.Total().IsZero())
	assert.True(t, two.Locked)
}

func TestRun_RejectionsDoNotAbortTheStream(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,10.0",
		"transfer,1,2,1.0",   // undecodable row
		"withdrawal,1,3,99",  // insufficient funds
		"dispute,1,99,",      // unknown transaction
		"withdrawal,1,4,2.5", // still applied after the failures above
	}, "\n")

	summary, l, err := runCSV(t, input)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Applied)
	assert.Equal(t, 1, summary.RejectedRows)
	assert.Equal(t, 2, summary.RejectedRecords)
	assert.Equal(t, 3, summary.Rejected())

	account, ok := l.Get(1)
	require.True(t, ok)
	assert.True(t, account.Available.Equal(decimal.RequireFromString("7.5")))
}

func TestRun_EmptyBody(t *testing.T) {
	t.Parallel()

	summary, l, err := runCSV(t, "type,client,tx,amount\n")
	require.NoError(t, err)
	assert.Zero(t, summary.Applied)
	assert.Zero(t, summary.Rejected())
	assert.Equal(t, 0, l.Len())
}

func TestRun_MissingHeaderIsFatal(t *testing.T) {
	t.Parallel()

	summary, _, err := runCSV(t, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input stream failed")
	assert.Zero(t, summary.Applied)
}

func TestRun_SummarySurvivesStreamFailure(t *testing.T) {
	t.Parallel()

	// A reader that fails mid-stream after yielding one valid row.
	input := "type,client,tx,amount\ndeposit,1,1,10.0\n"
	failing := io.MultiReader(strings.NewReader(input), errReader{})

	l := ledger.New()
	eng := engine.New(l, engine.Policy{})
	summary, err := Run(context.Background(), csvio.NewReader(failing), eng, log.NewNop())

	require.Error(t, err)
	assert.Equal(t, 1, summary.Applied)

	account, ok := l.Get(1)
	require.True(t, ok)
	assert.True(t, account.Available.Equal(decimal.RequireFromString("10")))
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("disk failure")
}
