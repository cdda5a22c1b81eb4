package record

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies the type of a transaction record.
type Kind string

const (
	// KindDeposit credits a client's available balance.
	KindDeposit Kind = "deposit"
	// KindWithdrawal debits a client's available balance.
	KindWithdrawal Kind = "withdrawal"
	// KindDispute provisionally reverses a prior funding record, moving its
	// amount from available to held.
	KindDispute Kind = "dispute"
	// KindResolve cancels a dispute, returning held funds to available.
	KindResolve Kind = "resolve"
	// KindChargeback finalizes a dispute, removing held funds and locking
	// the account.
	KindChargeback Kind = "chargeback"
)

// ParseKind converts a wire-format kind string to a Kind constant.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return Kind(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Funding reports whether the kind carries its own amount (deposit or
// withdrawal). Lifecycle kinds reference the amount of an earlier funding
// record instead.
func (k Kind) Funding() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Record is a structurally valid transaction record.
//
// Fields are unexported so a Record can only exist in a consistent shape:
// an amount is present if and only if the kind is a funding kind, and the
// amount is strictly positive.
type Record struct {
	kind   Kind
	client uint16
	tx     uint32
	amount decimal.Decimal
}

// New validates and constructs a Record. For funding kinds amount must be a
// positive decimal; for lifecycle kinds it must be nil.
func New(kind Kind, client uint16, tx uint32, amount *decimal.Decimal) (Record, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Record{}, err
	}

	if kind.Funding() {
		if amount == nil {
			return Record{}, fmt.Errorf("%w: tx %d", ErrMissingAmount, tx)
		}

		if !amount.IsPositive() {
			return Record{}, fmt.Errorf("%w: tx %d", ErrAmountNotPositive, tx)
		}

		return Record{kind: kind, client: client, tx: tx, amount: *amount}, nil
	}

	if amount != nil {
		return Record{}, fmt.Errorf("%w: tx %d", ErrSuperfluousAmount, tx)
	}

	return Record{kind: kind, client: client, tx: tx}, nil
}

// NewDeposit constructs a validated deposit record.
func NewDeposit(client uint16, tx uint32, amount decimal.Decimal) (Record, error) {
	return New(KindDeposit, client, tx, &amount)
}

// NewWithdrawal constructs a validated withdrawal record.
func NewWithdrawal(client uint16, tx uint32, amount decimal.Decimal) (Record, error) {
	return New(KindWithdrawal, client, tx, &amount)
}

// NewDispute constructs a dispute referencing an earlier funding record.
func NewDispute(client uint16, tx uint32) Record {
	return Record{kind: KindDispute, client: client, tx: tx}
}

// NewResolve constructs a resolve referencing a disputed record.
func NewResolve(client uint16, tx uint32) Record {
	return Record{kind: KindResolve, client: client, tx: tx}
}

// NewChargeback constructs a chargeback referencing a disputed record.
func NewChargeback(client uint16, tx uint32) Record {
	return Record{kind: KindChargeback, client: client, tx: tx}
}

// Kind returns the record's kind.
func (r Record) Kind() Kind { return r.kind }

// Client returns the id of the account owner the record names.
func (r Record) Client() uint16 { return r.client }

// Tx returns the transaction id. For funding kinds it identifies this record;
// for lifecycle kinds it references the disputed funding record.
func (r Record) Tx() uint32 { return r.tx }

// Amount returns the funding amount. It is the zero decimal for lifecycle
// kinds, which carry no amount of their own.
func (r Record) Amount() decimal.Decimal { return r.amount }
