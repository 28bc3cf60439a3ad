// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrSnapshotUnavailable is returned when the ledger snapshot could not be read.
	ErrSnapshotUnavailable = errors.New("ledger snapshot unavailable")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Internal errors (99XXXX)
	ErrCodeSnapshotUnavailable    DashboardErrorCode = "DSH-990001"
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990002"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
