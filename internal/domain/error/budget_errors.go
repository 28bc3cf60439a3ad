// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("budget amount must be greater than zero")

	// ErrInvalidBudgetMonth is returned when the month key is not in YYYY-MM format.
	ErrInvalidBudgetMonth = errors.New("invalid budget month, expected YYYY-MM")

	// ErrInvalidBudgetCategory is returned when the category is not in the closed set.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")

	// ErrBudgetAlreadyExists is returned when a budget for the same category
	// and month already exists.
	ErrBudgetAlreadyExists = errors.New("budget already exists for category and month")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetMonth    BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BGT-010003"

	// Not-found errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BGT-020001"

	// Conflict errors (03XXXX)
	ErrCodeBudgetAlreadyExists BudgetErrorCode = "BGT-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
