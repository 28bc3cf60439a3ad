// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// EMI calculation domain errors.
var (
	// ErrInvalidPrincipal is returned when the principal is zero or negative.
	ErrInvalidPrincipal = errors.New("principal must be greater than zero")

	// ErrInvalidTenure is returned when the tenure is below one month.
	ErrInvalidTenure = errors.New("tenure must be at least one month")

	// ErrInvalidInterestRate is returned when the annual interest rate is negative.
	ErrInvalidInterestRate = errors.New("interest rate must not be negative")

	// ErrInvalidProcessingFee is returned when the processing fee is negative.
	ErrInvalidProcessingFee = errors.New("processing fee must not be negative")

	// ErrInvalidGSTRate is returned when the GST rate is negative.
	ErrInvalidGSTRate = errors.New("gst rate must not be negative")
)

// EMIErrorCode defines error codes for EMI calculation errors.
// Format: EMI-XXYYYY where XX is category and YYYY is specific error.
type EMIErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPrincipal     EMIErrorCode = "EMI-010001"
	ErrCodeInvalidTenure        EMIErrorCode = "EMI-010002"
	ErrCodeInvalidInterestRate  EMIErrorCode = "EMI-010003"
	ErrCodeInvalidProcessingFee EMIErrorCode = "EMI-010004"
	ErrCodeInvalidGSTRate       EMIErrorCode = "EMI-010005"
)

// EMIError represents an EMI calculation error with code and message.
type EMIError struct {
	Code    EMIErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EMIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EMIError) Unwrap() error {
	return e.Err
}

// NewEMIError creates a new EMIError with the given code and message.
func NewEMIError(code EMIErrorCode, message string, err error) *EMIError {
	return &EMIError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
