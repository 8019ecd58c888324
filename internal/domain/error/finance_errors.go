package error

import "errors"

// Finance domain errors.
var (
	// ErrInvalidTransactionType is returned when the transaction type is
	// neither income nor expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNegativeBudgetLimit is returned when a budget is created with a
	// limit below zero.
	ErrNegativeBudgetLimit = errors.New("budget limit must not be negative")
)

// FinanceErrorCode defines error codes for finance errors.
type FinanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType FinanceErrorCode = "FIN-010001"
	ErrCodeNegativeBudgetLimit    FinanceErrorCode = "FIN-010002"
)

// FinanceError represents a finance error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
