package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// DeleteBudgetUseCase removes a budget.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.AggregateCache
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	cache adapter.AggregateCache,
) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute deletes the budget with the given id.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.budgetRepo.FindByID(ctx, id); err != nil {
		return wrapBudgetLookupError(err)
	}

	if err := uc.budgetRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	invalidateAggregates(ctx, uc.cache, id)
	return nil
}
