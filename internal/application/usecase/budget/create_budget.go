// Package budget contains budget CRUD use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for creating a budget.
type CreateBudgetInput struct {
	Category string
	Amount   decimal.Decimal
	Month    string // "YYYY-MM"
}

// CreateBudgetUseCase creates a monthly budget for a category.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.AggregateCache
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	cache adapter.AggregateCache,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute validates and persists a new budget. A category has at most one
// budget per month.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*entity.Budget, error) {
	category, err := validateBudgetFields(input.Category, input.Amount, input.Month)
	if err != nil {
		return nil, err
	}

	existing, err := uc.budgetRepo.FindByCategoryAndMonth(ctx, category, input.Month)
	if err != nil && !errors.Is(err, domainerror.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to check existing budget: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			fmt.Sprintf("budget for %s in %s already exists", category, input.Month),
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	budget := entity.NewBudget(category, input.Amount, input.Month)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	invalidateAggregates(ctx, uc.cache, budget.ID)
	return budget, nil
}

func validateBudgetFields(category string, amount decimal.Decimal, month string) (entity.Category, error) {
	cat := entity.Category(category)
	if !cat.IsValid() {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			fmt.Sprintf("invalid budget category: %s", category),
			domainerror.ErrInvalidBudgetCategory,
		)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	if _, err := time.Parse(entity.MonthKeyLayout, month); err != nil {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			fmt.Sprintf("invalid budget month: %s", month),
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	return cat, nil
}

func wrapBudgetLookupError(err error) error {
	if errors.Is(err, domainerror.ErrBudgetNotFound) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			err,
		)
	}
	return fmt.Errorf("failed to load budget: %w", err)
}

// invalidateAggregates retires all cached derived views after a mutation.
func invalidateAggregates(ctx context.Context, cache adapter.AggregateCache, budgetID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate aggregate cache",
			"budgetID", budgetID,
			"error", err,
		)
	}
}
