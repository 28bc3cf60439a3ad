// Package expense contains expense CRUD use cases.
package expense

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
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// EMITermsInput carries the installment terms of an EMI expense.
type EMITermsInput struct {
	TenureMonths       int
	AnnualInterestRate decimal.Decimal
	ProcessingFee      decimal.Decimal
	GSTRate            decimal.Decimal
}

// CreateExpenseInput represents the input for creating an expense.
type CreateExpenseInput struct {
	Title         string
	Amount        decimal.Decimal
	Category      string
	Date          time.Time
	Description   string
	PaymentModeID uuid.UUID

	// EMI is nil for a plain expense. When set, Amount is the principal and
	// the installment schedule is computed once at creation.
	EMI *EMITermsInput
}

// CreateExpenseUseCase creates a new expense in the ledger.
type CreateExpenseUseCase struct {
	expenseRepo     adapter.ExpenseRepository
	paymentModeRepo adapter.PaymentModeRepository
	cache           adapter.AggregateCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	paymentModeRepo adapter.PaymentModeRepository,
	cache adapter.AggregateCache,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:     expenseRepo,
		paymentModeRepo: paymentModeRepo,
		cache:           cache,
	}
}

// Execute validates and persists a new expense.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*entity.Expense, error) {
	category, err := validateExpenseFields(input.Title, input.Amount, input.Category, input.Date)
	if err != nil {
		return nil, err
	}

	if _, err := uc.paymentModeRepo.FindByID(ctx, input.PaymentModeID); err != nil {
		return nil, wrapPaymentModeLookupError(err)
	}

	var terms *entity.EMITerms
	if input.EMI != nil {
		terms, err = buildEMITerms(input.Amount, input.EMI)
		if err != nil {
			return nil, err
		}
	}

	expense := entity.NewExpense(
		input.Title,
		input.Amount,
		category,
		input.Date,
		input.Description,
		input.PaymentModeID,
		terms,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	invalidateAggregates(ctx, uc.cache, expense.ID)
	return expense, nil
}

// buildEMITerms runs the amortization calculator over the creation inputs.
func buildEMITerms(principal decimal.Decimal, input *EMITermsInput) (*entity.EMITerms, error) {
	schedule, err := valueobject.ComputeEMISchedule(
		principal,
		input.TenureMonths,
		input.AnnualInterestRate,
		input.ProcessingFee,
		input.GSTRate,
	)
	if err != nil {
		return nil, wrapScheduleError(err)
	}

	return &entity.EMITerms{
		TenureMonths:        input.TenureMonths,
		AnnualInterestRate:  input.AnnualInterestRate,
		ProcessingFee:       input.ProcessingFee,
		GSTRate:             input.GSTRate,
		MonthlyAmount:       schedule.MonthlyAmount,
		TotalAmount:         schedule.TotalAmount,
		TotalInterest:       schedule.TotalInterest,
		TotalProcessingFees: schedule.TotalProcessingFees,
	}, nil
}

func validateExpenseFields(title string, amount decimal.Decimal, category string, date time.Time) (entity.Category, error) {
	if title == "" {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseTitleRequired,
			"expense title is required",
			domainerror.ErrExpenseTitleRequired,
		)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	cat := entity.Category(category)
	if !cat.IsValid() {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			fmt.Sprintf("invalid expense category: %s", category),
			domainerror.ErrInvalidExpenseCategory,
		)
	}
	if date.IsZero() {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}
	return cat, nil
}

// wrapScheduleError maps calculator sentinels to coded EMI errors.
func wrapScheduleError(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrInvalidPrincipal):
		return domainerror.NewEMIError(domainerror.ErrCodeInvalidPrincipal, "principal must be greater than zero", err)
	case errors.Is(err, domainerror.ErrInvalidTenure):
		return domainerror.NewEMIError(domainerror.ErrCodeInvalidTenure, "tenure must be at least one month", err)
	case errors.Is(err, domainerror.ErrInvalidInterestRate):
		return domainerror.NewEMIError(domainerror.ErrCodeInvalidInterestRate, "interest rate must not be negative", err)
	case errors.Is(err, domainerror.ErrInvalidProcessingFee):
		return domainerror.NewEMIError(domainerror.ErrCodeInvalidProcessingFee, "processing fee must not be negative", err)
	case errors.Is(err, domainerror.ErrInvalidGSTRate):
		return domainerror.NewEMIError(domainerror.ErrCodeInvalidGSTRate, "gst rate must not be negative", err)
	default:
		return err
	}
}

func wrapPaymentModeLookupError(err error) error {
	if errors.Is(err, domainerror.ErrPaymentModeNotFound) {
		return domainerror.NewPaymentModeError(
			domainerror.ErrCodePaymentModeNotFound,
			"payment mode not found",
			err,
		)
	}
	return fmt.Errorf("failed to load payment mode: %w", err)
}

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

// invalidateAggregates retires all cached derived views after a mutation.
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
