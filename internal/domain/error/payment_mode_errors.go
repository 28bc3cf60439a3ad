// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Payment mode domain errors.
var (
	// ErrPaymentModeNotFound is returned when a payment mode is not found in the system.
	ErrPaymentModeNotFound = errors.New("payment mode not found")

	// ErrInvalidPaymentModeType is returned when the payment mode type is invalid.
	ErrInvalidPaymentModeType = errors.New("invalid payment mode type")

	// ErrPaymentModeNameRequired is returned when the payment mode name is empty.
	ErrPaymentModeNameRequired = errors.New("payment mode name is required")

	// ErrPaymentModeNameTaken is returned when a payment mode with the same name exists.
	ErrPaymentModeNameTaken = errors.New("payment mode name already in use")

	// ErrPaymentModeInUse is returned when deleting a payment mode that still
	// has expenses charged against it.
	ErrPaymentModeInUse = errors.New("payment mode has expenses and cannot be deleted")
)

// PaymentModeErrorCode defines error codes for payment mode errors.
// Format: PMT-XXYYYY where XX is category and YYYY is specific error.
type PaymentModeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPaymentModeType  PaymentModeErrorCode = "PMT-010001"
	ErrCodePaymentModeNameRequired PaymentModeErrorCode = "PMT-010002"

	// Not-found errors (02XXXX)
	ErrCodePaymentModeNotFound PaymentModeErrorCode = "PMT-020001"

	// Conflict errors (03XXXX)
	ErrCodePaymentModeNameTaken PaymentModeErrorCode = "PMT-030001"
	ErrCodePaymentModeInUse     PaymentModeErrorCode = "PMT-030002"
)

// PaymentModeError represents a payment mode error with code and message.
type PaymentModeError struct {
	Code    PaymentModeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentModeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentModeError) Unwrap() error {
	return e.Err
}

// NewPaymentModeError creates a new PaymentModeError with the given code and message.
func NewPaymentModeError(code PaymentModeErrorCode, message string, err error) *PaymentModeError {
	return &PaymentModeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
