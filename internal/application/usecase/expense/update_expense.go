package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UpdateExpenseInput represents the input for updating an expense.
type UpdateExpenseInput struct {
	ExpenseID     uuid.UUID
	Title         string
	Amount        decimal.Decimal
	Category      string
	Date          time.Time
	Description   string
	PaymentModeID uuid.UUID

	// EMI is nil to turn the record into (or keep it) a plain expense. When
	// set, the installment schedule is recomputed from the new terms; the old
	// schedule is never patched in place.
	EMI *EMITermsInput
}

// UpdateExpenseUseCase updates an existing expense.
type UpdateExpenseUseCase struct {
	expenseRepo     adapter.ExpenseRepository
	paymentModeRepo adapter.PaymentModeRepository
	cache           adapter.AggregateCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	paymentModeRepo adapter.PaymentModeRepository,
	cache adapter.AggregateCache,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:     expenseRepo,
		paymentModeRepo: paymentModeRepo,
		cache:           cache,
	}
}

// Execute validates and applies the update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*entity.Expense, error) {
	category, err := validateExpenseFields(input.Title, input.Amount, input.Category, input.Date)
	if err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, wrapExpenseLookupError(err)
	}

	if input.PaymentModeID != expense.PaymentModeID {
		if _, err := uc.paymentModeRepo.FindByID(ctx, input.PaymentModeID); err != nil {
			return nil, wrapPaymentModeLookupError(err)
		}
	}

	expense.Title = input.Title
	expense.Amount = input.Amount
	expense.Category = category
	expense.Date = input.Date
	expense.Description = input.Description
	expense.PaymentModeID = input.PaymentModeID

	if input.EMI != nil {
		terms, err := buildEMITerms(input.Amount, input.EMI)
		if err != nil {
			return nil, err
		}
		expense.IsEMI = true
		expense.EMI = terms
		if expense.PaidAmount.GreaterThan(terms.TotalAmount) {
			expense.PaidAmount = terms.TotalAmount
		}
		expense.IsPaid = expense.PaidAmount.GreaterThanOrEqual(terms.TotalAmount)
	} else {
		if expense.IsEMI {
			expense.IsPaid = false
			expense.PaidDate = nil
			expense.PaidAmount = decimal.Zero
		} else if expense.IsPaid && expense.PaidAmount.GreaterThan(expense.Amount) {
			expense.PaidAmount = expense.Amount
		}
		expense.IsEMI = false
		expense.EMI = nil
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	invalidateAggregates(ctx, uc.cache, expense.ID)
	return expense, nil
}
