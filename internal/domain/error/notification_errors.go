// Package error defines domain-specific errors for the Pennyflow application.
package error

import "errors"

// Notification delivery errors.
var (
	// ErrPermanentDeliveryFailure is returned when a notification fails with an
	// error that a retry cannot fix.
	ErrPermanentDeliveryFailure = errors.New("permanent delivery failure")

	// ErrTemporaryDeliveryFailure is returned when a notification fails with a
	// transient error.
	ErrTemporaryDeliveryFailure = errors.New("temporary delivery failure")

	// ErrPushNotConfigured is returned when a push is requested but no push
	// provider is configured.
	ErrPushNotConfigured = errors.New("push delivery not configured")
)

// DeliveryErrorCode defines error codes for notification delivery errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type DeliveryErrorCode string

const (
	// Send errors (01XXXX)
	ErrCodePermanentDeliveryFailure DeliveryErrorCode = "NTF-010001"
	ErrCodeTemporaryDeliveryFailure DeliveryErrorCode = "NTF-010002"
	ErrCodePushNotConfigured        DeliveryErrorCode = "NTF-010003"
)

// DeliveryError represents a notification delivery error with code and message.
// Delivery failures are non-fatal by policy: batch jobs log them and move on,
// and state that implies a successful delivery must not be applied.
type DeliveryError struct {
	Code    DeliveryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// NewDeliveryError creates a new DeliveryError with the given code and message.
func NewDeliveryError(code DeliveryErrorCode, message string, err error) *DeliveryError {
	return &DeliveryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
