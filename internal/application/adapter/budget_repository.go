package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByCategoryAndMonth retrieves the budget for a category in a month,
	// if one exists.
	FindByCategoryAndMonth(ctx context.Context, category entity.Category, month string) (*entity.Budget, error)

	// FindAll retrieves every budget, newest month first.
	FindAll(ctx context.Context) ([]*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
