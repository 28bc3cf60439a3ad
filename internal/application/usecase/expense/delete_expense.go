package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// DeleteExpenseUseCase removes an expense from the ledger.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.AggregateCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cache adapter.AggregateCache,
) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute deletes the expense with the given id.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.expenseRepo.FindByID(ctx, id); err != nil {
		return wrapExpenseLookupError(err)
	}

	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	invalidateAggregates(ctx, uc.cache, id)
	return nil
}
