// Package error defines domain-specific errors for the Pennyflow application.
package error

import "errors"

// Batch job errors.
var (
	// ErrPopulationFetchFailed is returned when a job cannot load the set of
	// items it should process. This is the only condition that fails a whole
	// job run; per-item failures are isolated and logged.
	ErrPopulationFetchFailed = errors.New("failed to fetch job population")

	// ErrJobAlreadyRunning is returned when a scheduled fire overlaps a still
	// running invocation of the same job.
	ErrJobAlreadyRunning = errors.New("job is already running")
)

// JobErrorCode defines error codes for batch job errors.
// Format: JOB-XXYYYY where XX is category and YYYY is specific error.
type JobErrorCode string

const (
	// Run errors (01XXXX)
	ErrCodePopulationFetchFailed JobErrorCode = "JOB-010001"
	ErrCodeJobAlreadyRunning     JobErrorCode = "JOB-010002"
)

// JobError represents a batch job error with code and message.
type JobError struct {
	Code    JobErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *JobError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *JobError) Unwrap() error {
	return e.Err
}

// NewJobError creates a new JobError with the given code and message.
func NewJobError(code JobErrorCode, message string, err error) *JobError {
	return &JobError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
