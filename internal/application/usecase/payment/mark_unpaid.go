package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// MarkUnpaidInput represents the input for reversing a settlement.
type MarkUnpaidInput struct {
	ExpenseID uuid.UUID
}

// MarkUnpaidUseCase reverses a settlement: a plain expense is cleared, an
// installment expense steps back one monthly installment, floored at zero.
type MarkUnpaidUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.AggregateCache
	now         func() time.Time
}

// NewMarkUnpaidUseCase creates a new MarkUnpaidUseCase instance.
func NewMarkUnpaidUseCase(
	expenseRepo adapter.ExpenseRepository,
	cache adapter.AggregateCache,
	now func() time.Time,
) *MarkUnpaidUseCase {
	if now == nil {
		now = time.Now
	}
	return &MarkUnpaidUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
		now:         now,
	}
}

// Execute performs the mark-unpaid mutation.
func (uc *MarkUnpaidUseCase) Execute(ctx context.Context, input MarkUnpaidInput) (*ExpenseStateOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, wrapExpenseLookupError(err)
	}

	changed := expense.MarkUnpaid(uc.now().UTC())
	if changed {
		if err := uc.expenseRepo.Update(ctx, expense); err != nil {
			return nil, fmt.Errorf("failed to update expense: %w", err)
		}
		invalidateAggregates(ctx, uc.cache, expense.ID)
	}

	return &ExpenseStateOutput{
		Expense:               expense,
		Changed:               changed,
		RemainingAmount:       expense.RemainingAmount(),
		RemainingInstallments: expense.RemainingInstallments(),
	}, nil
}
