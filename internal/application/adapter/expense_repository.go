// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	Category      *entity.Category
	PaymentModeID *uuid.UUID
	OnlyEMI       bool
}

// ExpensePagination defines pagination options.
type ExpensePagination struct {
	Page  int
	Limit int
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses   []*entity.Expense
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses based on filter criteria with pagination,
	// newest first.
	FindByFilter(ctx context.Context, filter ExpenseFilter, pagination ExpensePagination) (*ExpenseListResult, error)

	// Update updates an existing expense in the database. Callers serialize
	// updates per expense; the repository performs no optimistic locking.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
