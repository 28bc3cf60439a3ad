// Package payment contains the paid/unpaid lifecycle use cases.
//
// Callers serialize mutations per expense (single writer per record); the use
// cases themselves perform no optimistic locking. Every successful mutation
// invalidates the aggregate cache so stale derived views are never served.
package payment

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

// MarkPaidInput represents the input for settling an expense.
type MarkPaidInput struct {
	ExpenseID  uuid.UUID
	PaidAmount *decimal.Decimal // plain expenses only; ignored for installments
	PaidDate   *time.Time
}

// ExpenseStateOutput represents the paid state of an expense after a mutation.
type ExpenseStateOutput struct {
	Expense *entity.Expense

	// Changed reports whether the call mutated anything. Repeated calls at the
	// cap or floor are no-ops that still return the current state.
	Changed bool

	RemainingAmount       decimal.Decimal
	RemainingInstallments int
}

// MarkPaidUseCase settles an expense: a plain expense in full, an installment
// expense one monthly installment at a time.
type MarkPaidUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.AggregateCache
	now         func() time.Time
}

// NewMarkPaidUseCase creates a new MarkPaidUseCase instance.
func NewMarkPaidUseCase(
	expenseRepo adapter.ExpenseRepository,
	cache adapter.AggregateCache,
	now func() time.Time,
) *MarkPaidUseCase {
	if now == nil {
		now = time.Now
	}
	return &MarkPaidUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
		now:         now,
	}
}

// Execute performs the mark-paid mutation.
func (uc *MarkPaidUseCase) Execute(ctx context.Context, input MarkPaidInput) (*ExpenseStateOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, wrapExpenseLookupError(err)
	}

	if !expense.IsEMI && input.PaidAmount != nil {
		if input.PaidAmount.LessThanOrEqual(decimal.Zero) || input.PaidAmount.GreaterThan(expense.Amount) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidPaidAmount,
				"paid amount must be positive and must not exceed the expense amount",
				domainerror.ErrInvalidPaidAmount,
			)
		}
	}

	changed := expense.MarkPaid(input.PaidAmount, input.PaidDate, uc.now().UTC())
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

// wrapExpenseLookupError maps repository sentinels to coded expense errors.
func wrapExpenseLookupError(err error) error {
	if errors.Is(err, domainerror.ErrExpenseNotFound) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			err,
		)
	}
	return fmt.Errorf("failed to load expense: %w", err)
}

// invalidateAggregates retires all cached derived views. Failures are logged,
// not propagated: the mutation itself already committed.
func invalidateAggregates(ctx context.Context, cache adapter.AggregateCache, expenseID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate aggregate cache",
			"expenseID", expenseID,
			"error", err,
		)
	}
}
