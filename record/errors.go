package record

import "errors"

// Structural validation errors. These are parse-boundary failures: the engine
// never sees a record that tripped one of them.
var (
	// ErrUnknownKind marks a kind string outside the five known kinds.
	ErrUnknownKind = errors.New("unknown transaction kind")
	// ErrMissingAmount marks a deposit/withdrawal without an amount.
	ErrMissingAmount = errors.New("missing amount for funding transaction")
	// ErrSuperfluousAmount marks a dispute/resolve/chargeback carrying an amount.
	ErrSuperfluousAmount = errors.New("superfluous amount for lifecycle transaction")
	// ErrAmountNotPositive marks a zero or negative funding amount.
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
)
