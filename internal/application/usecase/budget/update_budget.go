package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for updating a budget.
type UpdateBudgetInput struct {
	ID       uuid.UUID
	Category string
	Amount   decimal.Decimal
	Month    string // "YYYY-MM"
}

// UpdateBudgetUseCase updates an existing budget.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.AggregateCache
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	cache adapter.AggregateCache,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute validates and applies the update. Moving a budget to another
// category or month keeps the per-(category, month) uniqueness.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*entity.Budget, error) {
	category, err := validateBudgetFields(input.Category, input.Amount, input.Month)
	if err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, wrapBudgetLookupError(err)
	}

	if category != budget.Category || input.Month != budget.Month {
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
	}

	budget.Category = category
	budget.Amount = input.Amount
	budget.Month = input.Month
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	invalidateAggregates(ctx, uc.cache, budget.ID)
	return budget, nil
}
