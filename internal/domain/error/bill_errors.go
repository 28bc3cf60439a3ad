// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Bill grouping domain errors.
var (
	// ErrInvalidBillYear is returned when the bill year is out of range.
	ErrInvalidBillYear = errors.New("invalid bill year")

	// ErrInvalidBillMonth is returned when the bill month is not in 1..12.
	ErrInvalidBillMonth = errors.New("invalid bill month, expected 1-12")
)

// BillErrorCode defines error codes for bill grouping errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBillYear  BillErrorCode = "BIL-010001"
	ErrCodeInvalidBillMonth BillErrorCode = "BIL-010002"
)

// BillError represents a bill grouping error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
