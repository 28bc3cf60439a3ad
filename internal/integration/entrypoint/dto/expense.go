package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/payment"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// EMITermsRequest carries installment terms inside an expense request.
type EMITermsRequest struct {
	TenureMonths       int     `json:"tenure_months" binding:"required"`
	AnnualInterestRate float64 `json:"annual_interest_rate"`
	ProcessingFee      float64 `json:"processing_fee"`
	GSTRate            float64 `json:"gst_rate"`
}

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Title         string           `json:"title" binding:"required,min=1,max=255"`
	Amount        float64          `json:"amount" binding:"required"`
	Category      string           `json:"category" binding:"required"`
	Date          string           `json:"date" binding:"required"`
	Description   string           `json:"description,omitempty" binding:"omitempty,max=1000"`
	PaymentModeID string           `json:"payment_mode_id" binding:"required"`
	EMI           *EMITermsRequest `json:"emi,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Title         string           `json:"title" binding:"required,min=1,max=255"`
	Amount        float64          `json:"amount" binding:"required"`
	Category      string           `json:"category" binding:"required"`
	Date          string           `json:"date" binding:"required"`
	Description   string           `json:"description,omitempty" binding:"omitempty,max=1000"`
	PaymentModeID string           `json:"payment_mode_id" binding:"required"`
	EMI           *EMITermsRequest `json:"emi,omitempty"`
}

// MarkPaidRequest represents the request body for settling an expense.
type MarkPaidRequest struct {
	PaidAmount *float64 `json:"paid_amount,omitempty"`
	PaidDate   *string  `json:"paid_date,omitempty"`
}

// ExpenseEMIResponse represents the installment terms in an expense response.
type ExpenseEMIResponse struct {
	TenureMonths        int    `json:"tenure_months"`
	AnnualInterestRate  string `json:"annual_interest_rate"`
	ProcessingFee       string `json:"processing_fee"`
	GSTRate             string `json:"gst_rate"`
	MonthlyAmount       string `json:"monthly_amount"`
	TotalAmount         string `json:"total_amount"`
	TotalInterest       string `json:"total_interest"`
	TotalProcessingFees string `json:"total_processing_fees"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Amount        string              `json:"amount"`
	Category      string              `json:"category"`
	Date          string              `json:"date"`
	Description   string              `json:"description"`
	PaymentModeID string              `json:"payment_mode_id"`
	IsEMI         bool                `json:"is_emi"`
	EMI           *ExpenseEMIResponse `json:"emi,omitempty"`
	IsPaid        bool                `json:"is_paid"`
	PaidDate      *time.Time          `json:"paid_date,omitempty"`
	PaidAmount    string              `json:"paid_amount"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ExpensePaginationResponse represents pagination information in API responses.
type ExpensePaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse         `json:"expenses"`
	Pagination ExpensePaginationResponse `json:"pagination"`
}

// ExpenseStateResponse represents the paid state of an expense after a
// mark-paid or mark-unpaid call.
type ExpenseStateResponse struct {
	Expense               ExpenseResponse `json:"expense"`
	Changed               bool            `json:"changed"`
	RemainingAmount       string          `json:"remaining_amount"`
	RemainingInstallments int             `json:"remaining_installments"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	response := ExpenseResponse{
		ID:            expense.ID.String(),
		Title:         expense.Title,
		Amount:        expense.Amount.String(),
		Category:      expense.Category.String(),
		Date:          expense.Date.Format("2006-01-02"),
		Description:   expense.Description,
		PaymentModeID: expense.PaymentModeID.String(),
		IsEMI:         expense.IsEMI,
		IsPaid:        expense.IsPaid,
		PaidDate:      expense.PaidDate,
		PaidAmount:    expense.PaidAmount.String(),
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}

	if expense.EMI != nil {
		response.EMI = &ExpenseEMIResponse{
			TenureMonths:        expense.EMI.TenureMonths,
			AnnualInterestRate:  expense.EMI.AnnualInterestRate.String(),
			ProcessingFee:       expense.EMI.ProcessingFee.String(),
			GSTRate:             expense.EMI.GSTRate.String(),
			MonthlyAmount:       expense.EMI.MonthlyAmount.String(),
			TotalAmount:         expense.EMI.TotalAmount.String(),
			TotalInterest:       expense.EMI.TotalInterest.String(),
			TotalProcessingFees: expense.EMI.TotalProcessingFees.String(),
		}
	}
	return response
}

// ToExpenseListResponse converts an expense list result to its response DTO.
func ToExpenseListResponse(result *adapter.ExpenseListResult) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(result.Expenses))
	for i, e := range result.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}

	return ExpenseListResponse{
		Expenses: expenses,
		Pagination: ExpensePaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
}

// ToExpenseStateResponse converts a payment mutation output to its response DTO.
func ToExpenseStateResponse(output *payment.ExpenseStateOutput) ExpenseStateResponse {
	return ExpenseStateResponse{
		Expense:               ToExpenseResponse(output.Expense),
		Changed:               output.Changed,
		RemainingAmount:       output.RemainingAmount.String(),
		RemainingInstallments: output.RemainingInstallments,
	}
}
