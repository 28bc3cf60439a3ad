package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GetExpenseUseCase retrieves a single expense by id.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute retrieves the expense with the given id.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapExpenseLookupError(err)
	}
	return expense, nil
}
