// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the expense amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("expense amount must be greater than zero")

	// ErrInvalidExpenseCategory is returned when the category is not in the closed set.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")

	// ErrInvalidExpenseDate is returned when the expense date is invalid.
	ErrInvalidExpenseDate = errors.New("invalid expense date")

	// ErrInvalidPaidAmount is returned when a paid amount exceeds the expense amount.
	ErrInvalidPaidAmount = errors.New("paid amount must not exceed expense amount")

	// ErrExpenseTitleRequired is returned when the expense title is empty.
	ErrExpenseTitleRequired = errors.New("expense title is required")

	// ErrExpenseConflict is returned when a concurrent mutation was detected
	// on the same expense record.
	ErrExpenseConflict = errors.New("conflicting update on expense")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseCategory ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseDate     ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidPaidAmount      ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseTitleRequired   ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010006"

	// Not-found errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"

	// Conflict errors (03XXXX)
	ErrCodeExpenseConflict ExpenseErrorCode = "EXP-030001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
