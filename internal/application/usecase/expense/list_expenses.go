package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	StartDate     *time.Time
	EndDate       *time.Time
	Category      *string
	PaymentModeID *uuid.UUID
	Page          int
	Limit         int
}

// ListExpensesUseCase lists expenses matching a filter, newest first.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute retrieves expenses matching the filter.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*adapter.ExpenseListResult, error) {
	filter := adapter.ExpenseFilter{
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		PaymentModeID: input.PaymentModeID,
	}

	if input.Category != nil {
		category := entity.Category(*input.Category)
		if !category.IsValid() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseCategory,
				fmt.Sprintf("invalid expense category: %s", *input.Category),
				domainerror.ErrInvalidExpenseCategory,
			)
		}
		filter.Category = &category
	}

	pagination := adapter.ExpensePagination{Page: input.Page, Limit: input.Limit}
	if pagination.Page < 1 {
		pagination.Page = defaultPage
	}
	if pagination.Limit < 1 {
		pagination.Limit = defaultLimit
	}
	if pagination.Limit > maxLimit {
		pagination.Limit = maxLimit
	}

	result, err := uc.expenseRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return result, nil
}
