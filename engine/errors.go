package engine

import "fmt"

// ErrorCode classifies engine rejections. The set is closed: every rejection
// Apply can produce maps to exactly one code.
type ErrorCode string

const (
	// ErrorDuplicateTransaction indicates a deposit/withdrawal reused an
	// existing transaction id.
	ErrorDuplicateTransaction ErrorCode = "duplicate_transaction"
	// ErrorInsufficientFunds indicates a withdrawal exceeded the available
	// balance.
	ErrorInsufficientFunds ErrorCode = "insufficient_funds"
	// ErrorAccountLocked indicates an operation on an account locked by a
	// prior chargeback.
	ErrorAccountLocked ErrorCode = "account_locked"
	// ErrorTransactionNotFound indicates a lifecycle record referenced an
	// unknown transaction id.
	ErrorTransactionNotFound ErrorCode = "transaction_not_found"
	// ErrorAlreadyDisputed indicates a dispute referenced a transaction
	// already under dispute.
	ErrorAlreadyDisputed ErrorCode = "already_disputed"
	// ErrorTransactionNotDisputed indicates a resolve/chargeback referenced a
	// transaction not currently disputed.
	ErrorTransactionNotDisputed ErrorCode = "transaction_not_disputed"
	// ErrorClientMismatch indicates a lifecycle record's client does not own
	// the referenced transaction.
	ErrorClientMismatch ErrorCode = "client_mismatch"
	// ErrorTransactionChargedBack indicates a dispute referenced a
	// transaction already finalized by chargeback.
	ErrorTransactionChargedBack ErrorCode = "transaction_charged_back"
)

// DomainError is a structured engine rejection. It is local and recoverable:
// the caller logs it and continues with the next record.
type DomainError struct {
	Code    ErrorCode
	Tx      uint32
	Message string
}

// Error returns the formatted domain error string.
func (e DomainError) Error() string {
	return fmt.Sprintf("%s: tx %d: %s", e.Code, e.Tx, e.Message)
}

// NewDomainError creates a domain error with code, transaction id, and message.
func NewDomainError(code ErrorCode, tx uint32, message string) error {
	return DomainError{Code: code, Tx: tx, Message: message}
}
