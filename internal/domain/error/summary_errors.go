// Package error defines domain-specific errors for the Pennyflow application.
package error

import "errors"

// Summary domain errors.
var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrSummaryReadFailed is returned when the inputs of a summary cannot be read.
	ErrSummaryReadFailed = errors.New("failed to read summary inputs")

	// ErrSummaryWriteFailed is returned when a computed summary cannot be persisted.
	ErrSummaryWriteFailed = errors.New("failed to persist financial summary")

	// ErrMalformedBudget is returned when a budget row carries an unusable limit.
	ErrMalformedBudget = errors.New("malformed budget limit")
)

// SummaryErrorCode defines error codes for summary errors.
// Format: SUM-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	// Not-found errors (01XXXX)
	ErrCodeUserNotFound SummaryErrorCode = "SUM-010001"

	// Storage errors (02XXXX)
	ErrCodeSummaryReadFailed  SummaryErrorCode = "SUM-020001"
	ErrCodeSummaryWriteFailed SummaryErrorCode = "SUM-020002"

	// Computation errors (03XXXX)
	ErrCodeMalformedBudget SummaryErrorCode = "SUM-030001"
)

// SummaryError represents a summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
