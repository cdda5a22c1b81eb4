package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate_LazyZeroAccount(t *testing.T) {
	t.Parallel()

	l := New()
	require.Equal(t, 0, l.Len())

	account := l.GetOrCreate(3)
	require.NotNil(t, account)
	assert.Equal(t, uint16(3), account.Client)
	assert.True(t, account.Available.IsZero())
	assert.True(t, account.Held.IsZero())
	assert.True(t, account.Total().IsZero())
	assert.False(t, account.Locked)
	assert.Equal(t, 1, l.Len())
}

func TestGetOrCreate_ReturnsSameAccount(t *testing.T) {
	t.Parallel()

	l := New()
	first := l.GetOrCreate(9)
	first.Available = decimal.NewFromInt(5)

	second := l.GetOrCreate(9)
	assert.Same(t, first, second)
	assert.Equal(t, 1, l.Len())
}

func TestGet_MissingAccount(t *testing.T) {
	t.Parallel()

	l := New()
	_, ok := l.Get(1)
	assert.False(t, ok)

	l.GetOrCreate(1)
	account, ok := l.Get(1)
	require.True(t, ok)
	assert.Equal(t, uint16(1), account.Client)
}

func TestAccounts_SortedByClient(t *testing.T) {
	t.Parallel()

	l := New()
	for _, client := range []uint16{42, 7, 19, 1} {
		l.GetOrCreate(client)
	}

	accounts := l.Accounts()
	require.Len(t, accounts, 4)

	got := make([]uint16, 0, len(accounts))
	for _, account := range accounts {
		got = append(got, account.Client)
	}

	assert.Equal(t, []uint16{1, 7, 19, 42}, got)
}

func TestTotal_AvailablePlusHeld(t *testing.T) {
	t.Parallel()

	account := &Account{
		Client:    1,
		Available: decimal.RequireFromString("2.5"),
		Held:      decimal.RequireFromString("1.25"),
	}

	assert.True(t, account.Total().Equal(decimal.RequireFromString("3.75")))
}
