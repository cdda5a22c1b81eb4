// Package ledger holds per-client account state for a single replay.
//
// Accounts are created lazily with zero balances and are mutated only by the
// engine package; everything else reads them through Accounts or Get.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Account is the balance state of one client.
//
// Invariants maintained by the engine: Total() == Available + Held at all
// times; Held is never negative; Available may go negative only through a
// dispute of funds that were already spent.
type Account struct {
	Client    uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// Total returns the account's total funds, available plus held.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// Ledger maps client ids to their accounts. There is exactly one account per
// client id for the lifetime of a replay.
type Ledger struct {
	accounts map[uint16]*Account
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{accounts: make(map[uint16]*Account)}
}

// GetOrCreate returns the account for client, creating it with zero balances
// on first reference.
func (l *Ledger) GetOrCreate(client uint16) *Account {
	if account, ok := l.accounts[client]; ok {
		return account
	}

	account := &Account{
		Client:    client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
	}
	l.accounts[client] = account

	return account
}

// Get returns the account for client, if it exists.
func (l *Ledger) Get(client uint16) (*Account, bool) {
	account, ok := l.accounts[client]
	return account, ok
}

// Accounts returns all accounts sorted by client id, so enumeration order
// (and therefore final output) is deterministic.
func (l *Ledger) Accounts() []*Account {
	accounts := make([]*Account, 0, len(l.accounts))
	for _, account := range l.accounts {
		accounts = append(accounts, account)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Client < accounts[j].Client
	})

	return accounts
}

// Len returns the number of accounts in the ledger.
func (l *Ledger) Len() int {
	return len(l.accounts)
}
