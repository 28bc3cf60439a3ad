package emi

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 100
)

// ListEMIsInput represents the input for listing installment expenses.
type ListEMIsInput struct {
	Page  int
	Limit int
}

// EMIDetail represents one installment expense with its payment progress.
type EMIDetail struct {
	ID                 uuid.UUID
	Title              string
	Category           string
	Date               time.Time
	PaymentMode        string
	PrincipalAmount    decimal.Decimal
	MonthlyAmount      decimal.Decimal
	TotalAmount        decimal.Decimal
	TenureMonths       int
	AnnualInterestRate decimal.Decimal
	ProcessingFee      decimal.Decimal
	GSTRate            decimal.Decimal

	TotalPaid             decimal.Decimal
	RemainingAmount       decimal.Decimal
	RemainingInstallments int
	IsPaid                bool
	PaidDate              *time.Time
}

// ListEMIsOutput represents the output of listing installment expenses.
type ListEMIsOutput struct {
	EMIs       []EMIDetail
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListEMIsUseCase lists installment expenses with their derived progress.
type ListEMIsUseCase struct {
	expenseRepo     adapter.ExpenseRepository
	paymentModeRepo adapter.PaymentModeRepository
}

// NewListEMIsUseCase creates a new ListEMIsUseCase instance.
func NewListEMIsUseCase(
	expenseRepo adapter.ExpenseRepository,
	paymentModeRepo adapter.PaymentModeRepository,
) *ListEMIsUseCase {
	return &ListEMIsUseCase{
		expenseRepo:     expenseRepo,
		paymentModeRepo: paymentModeRepo,
	}
}

// Execute retrieves installment expenses, newest first.
func (uc *ListEMIsUseCase) Execute(ctx context.Context, input ListEMIsInput) (*ListEMIsOutput, error) {
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

	result, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{OnlyEMI: true}, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list installment expenses: %w", err)
	}

	modeNames := make(map[uuid.UUID]string)
	details := make([]EMIDetail, 0, len(result.Expenses))
	for _, expense := range result.Expenses {
		if expense.EMI == nil {
			continue
		}

		name, ok := modeNames[expense.PaymentModeID]
		if !ok {
			mode, err := uc.paymentModeRepo.FindByID(ctx, expense.PaymentModeID)
			if err == nil {
				name = mode.Name
			}
			modeNames[expense.PaymentModeID] = name
		}

		details = append(details, EMIDetail{
			ID:                    expense.ID,
			Title:                 expense.Title,
			Category:              expense.Category.String(),
			Date:                  expense.Date,
			PaymentMode:           name,
			PrincipalAmount:       expense.Amount,
			MonthlyAmount:         expense.EMI.MonthlyAmount,
			TotalAmount:           expense.EMI.TotalAmount,
			TenureMonths:          expense.EMI.TenureMonths,
			AnnualInterestRate:    expense.EMI.AnnualInterestRate,
			ProcessingFee:         expense.EMI.ProcessingFee,
			GSTRate:               expense.EMI.GSTRate,
			TotalPaid:             expense.PaidAmount,
			RemainingAmount:       expense.RemainingAmount(),
			RemainingInstallments: expense.RemainingInstallments(),
			IsPaid:                expense.IsPaid,
			PaidDate:              expense.PaidDate,
		})
	}

	return &ListEMIsOutput{
		EMIs:       details,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
