package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hameerabbasi/payment-engine/ledger"
	"github.com/hameerabbasi/payment-engine/record"
)

// Policy resolves behaviors the settlement rules leave open. Both default to
// false, the most restrictive reading.
type Policy struct {
	// DisputeOnLockedAccount permits dispute/resolve/chargeback records on an
	// account already locked by a prior chargeback. When false they are
	// rejected with ErrorAccountLocked, like funding records.
	DisputeOnLockedAccount bool
	// RedisputeAfterChargeback permits a new dispute against a transaction
	// that was already finalized by chargeback. When false it is rejected
	// with ErrorTransactionChargedBack.
	RedisputeAfterChargeback bool
}

// fundingEntry remembers a successfully applied deposit/withdrawal so later
// lifecycle records can reference its owner and amount. Entries are never
// removed, even after a dispute settles.
type fundingEntry struct {
	client uint16
	amount decimal.Decimal
	kind   record.Kind
}

// Engine is the transaction state engine. It exclusively owns the ledger and
// the dispute bookkeeping passed through a replay; callers apply records one
// at a time and enumerate the ledger afterwards.
type Engine struct {
	ledger      *ledger.Ledger
	history     map[uint32]fundingEntry
	disputes    map[uint32]struct{}
	chargedBack map[uint32]struct{}
	policy      Policy
}

// New creates an engine that settles records into l under the given policy.
func New(l *ledger.Ledger, policy Policy) *Engine {
	return &Engine{
		ledger:      l,
		history:     make(map[uint32]fundingEntry),
		disputes:    make(map[uint32]struct{}),
		chargedBack: make(map[uint32]struct{}),
		policy:      policy,
	}
}

// Apply settles one record against the ledger. A rejection is returned as a
// DomainError; the record had no effect and the replay may continue.
func (e *Engine) Apply(rec record.Record) error {
	switch rec.Kind() {
	case record.KindDeposit:
		return e.applyDeposit(rec)
	case record.KindWithdrawal:
		return e.applyWithdrawal(rec)
	case record.KindDispute:
		return e.applyDispute(rec)
	case record.KindResolve:
		return e.applyResolve(rec)
	case record.KindChargeback:
		return e.applyChargeback(rec)
	}

	// Only reachable with a zero Record; the constructors reject unknown
	// kinds. Not a DomainError: there is no taxonomy code for it.
	return fmt.Errorf("unhandled record kind %q", rec.Kind())
}

// Disputed reports whether tx is currently under dispute.
func (e *Engine) Disputed(tx uint32) bool {
	_, ok := e.disputes[tx]
	return ok
}

// ChargedBack reports whether tx was finalized by a chargeback.
func (e *Engine) ChargedBack(tx uint32) bool {
	_, ok := e.chargedBack[tx]
	return ok
}

// checkFunding runs the checks shared by deposits and withdrawals and returns
// the (possibly just created) target account.
func (e *Engine) checkFunding(rec record.Record) (*ledger.Account, error) {
	if _, exists := e.history[rec.Tx()]; exists {
		return nil, NewDomainError(ErrorDuplicateTransaction, rec.Tx(), "transaction id already exists")
	}

	account := e.ledger.GetOrCreate(rec.Client())
	if account.Locked {
		return nil, NewDomainError(ErrorAccountLocked, rec.Tx(), "account is locked")
	}

	return account, nil
}

// checkLifecycle runs the checks shared by dispute, resolve, and chargeback:
// the referenced funding record must exist, belong to the record's client,
// and the account must not be locked unless policy allows it.
func (e *Engine) checkLifecycle(rec record.Record) (*ledger.Account, fundingEntry, error) {
	entry, exists := e.history[rec.Tx()]
	if !exists {
		return nil, fundingEntry{}, NewDomainError(ErrorTransactionNotFound, rec.Tx(), "no such transaction")
	}

	if entry.client != rec.Client() {
		return nil, fundingEntry{}, NewDomainError(ErrorClientMismatch, rec.Tx(), "transaction belongs to a different client")
	}

	// The funding record created the account, so it is guaranteed to exist.
	account, _ := e.ledger.Get(entry.client)
	if account.Locked && !e.policy.DisputeOnLockedAccount {
		return nil, fundingEntry{}, NewDomainError(ErrorAccountLocked, rec.Tx(), "account is locked")
	}

	return account, entry, nil
}

func (e *Engine) applyDeposit(rec record.Record) error {
	account, err := e.checkFunding(rec)
	if err != nil {
		return err
	}

	account.Available = account.Available.Add(rec.Amount())
	e.history[rec.Tx()] = fundingEntry{client: rec.Client(), amount: rec.Amount(), kind: rec.Kind()}

	return nil
}

func (e *Engine) applyWithdrawal(rec record.Record) error {
	account, err := e.checkFunding(rec)
	if err != nil {
		return err
	}

	if account.Available.LessThan(rec.Amount()) {
		return NewDomainError(ErrorInsufficientFunds, rec.Tx(), "withdrawal exceeds available balance")
	}

	account.Available = account.Available.Sub(rec.Amount())
	e.history[rec.Tx()] = fundingEntry{client: rec.Client(), amount: rec.Amount(), kind: rec.Kind()}

	return nil
}

func (e *Engine) applyDispute(rec record.Record) error {
	account, entry, err := e.checkLifecycle(rec)
	if err != nil {
		return err
	}

	if _, finalized := e.chargedBack[rec.Tx()]; finalized && !e.policy.RedisputeAfterChargeback {
		return NewDomainError(ErrorTransactionChargedBack, rec.Tx(), "transaction was finalized by chargeback")
	}

	if _, disputed := e.disputes[rec.Tx()]; disputed {
		return NewDomainError(ErrorAlreadyDisputed, rec.Tx(), "transaction is already under dispute")
	}

	// Available may go negative here when the disputed funds were already
	// spent; that mirrors real chargeback exposure and is accepted.
	account.Available = account.Available.Sub(entry.amount)
	account.Held = account.Held.Add(entry.amount)
	e.disputes[rec.Tx()] = struct{}{}

	return nil
}

func (e *Engine) applyResolve(rec record.Record) error {
	account, entry, err := e.checkLifecycle(rec)
	if err != nil {
		return err
	}

	if _, disputed := e.disputes[rec.Tx()]; !disputed {
		return NewDomainError(ErrorTransactionNotDisputed, rec.Tx(), "transaction is not under dispute")
	}

	account.Held = account.Held.Sub(entry.amount)
	account.Available = account.Available.Add(entry.amount)
	delete(e.disputes, rec.Tx())

	return nil
}

func (e *Engine) applyChargeback(rec record.Record) error {
	account, entry, err := e.checkLifecycle(rec)
	if err != nil {
		return err
	}

	if _, disputed := e.disputes[rec.Tx()]; !disputed {
		return NewDomainError(ErrorTransactionNotDisputed, rec.Tx(), "transaction is not under dispute")
	}

	account.Held = account.Held.Sub(entry.amount)
	account.Locked = true
	delete(e.disputes, rec.Tx())
	e.chargedBack[rec.Tx()] = struct{}{}

	return nil
}
