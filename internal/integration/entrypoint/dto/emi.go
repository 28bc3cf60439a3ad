package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/emi"
)

// CalculateEMIRequest represents the request body for an EMI calculation.
type CalculateEMIRequest struct {
	Principal          float64 `json:"principal" binding:"required"`
	TenureMonths       int     `json:"tenure_months" binding:"required"`
	AnnualInterestRate float64 `json:"annual_interest_rate"`
	ProcessingFee      float64 `json:"processing_fee"`
	GSTRate            float64 `json:"gst_rate"`
}

// CalculateEMIResponse represents the result of an EMI calculation.
type CalculateEMIResponse struct {
	Principal          string `json:"principal"`
	TenureMonths       int    `json:"tenure_months"`
	AnnualInterestRate string `json:"annual_interest_rate"`
	ProcessingFee      string `json:"processing_fee"`
	GSTRate            string `json:"gst_rate"`

	MonthlyAmount       string `json:"monthly_amount"`
	TotalAmount         string `json:"total_amount"`
	TotalInterest       string `json:"total_interest"`
	TotalProcessingFees string `json:"total_processing_fees"`
}

// ToCalculateEMIResponse converts an EMI calculation output to its response DTO.
func ToCalculateEMIResponse(output *emi.CalculateEMIOutput) CalculateEMIResponse {
	return CalculateEMIResponse{
		Principal:           output.Principal.String(),
		TenureMonths:        output.TenureMonths,
		AnnualInterestRate:  output.AnnualInterestRate.String(),
		ProcessingFee:       output.ProcessingFee.String(),
		GSTRate:             output.GSTRate.String(),
		MonthlyAmount:       output.MonthlyAmount.String(),
		TotalAmount:         output.TotalAmount.String(),
		TotalInterest:       output.TotalInterest.String(),
		TotalProcessingFees: output.TotalProcessingFees.String(),
	}
}

// EMIDetailResponse represents one installment expense with payment progress.
type EMIDetailResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Category           string `json:"category"`
	Date               string `json:"date"`
	PaymentMode        string `json:"payment_mode"`
	PrincipalAmount    string `json:"principal_amount"`
	MonthlyAmount      string `json:"monthly_amount"`
	TotalAmount        string `json:"total_amount"`
	TenureMonths       int    `json:"tenure_months"`
	AnnualInterestRate string `json:"annual_interest_rate"`
	ProcessingFee      string `json:"processing_fee"`
	GSTRate            string `json:"gst_rate"`

	TotalPaid             string     `json:"total_paid"`
	RemainingAmount       string     `json:"remaining_amount"`
	RemainingInstallments int        `json:"remaining_installments"`
	IsPaid                bool       `json:"is_paid"`
	PaidDate              *time.Time `json:"paid_date,omitempty"`
}

// EMIListResponse represents the response for listing installment expenses.
type EMIListResponse struct {
	EMIs       []EMIDetailResponse `json:"emis"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}

// ToEMIListResponse converts an EMI listing output to its response DTO.
func ToEMIListResponse(output *emi.ListEMIsOutput) EMIListResponse {
	details := make([]EMIDetailResponse, len(output.EMIs))
	for i, d := range output.EMIs {
		details[i] = EMIDetailResponse{
			ID:                    d.ID.String(),
			Title:                 d.Title,
			Category:              d.Category,
			Date:                  d.Date.Format("2006-01-02"),
			PaymentMode:           d.PaymentMode,
			PrincipalAmount:       d.PrincipalAmount.String(),
			MonthlyAmount:         d.MonthlyAmount.String(),
			TotalAmount:           d.TotalAmount.String(),
			TenureMonths:          d.TenureMonths,
			AnnualInterestRate:    d.AnnualInterestRate.String(),
			ProcessingFee:         d.ProcessingFee.String(),
			GSTRate:               d.GSTRate.String(),
			TotalPaid:             d.TotalPaid.String(),
			RemainingAmount:       d.RemainingAmount.String(),
			RemainingInstallments: d.RemainingInstallments,
			IsPaid:                d.IsPaid,
			PaidDate:              d.PaidDate,
		}
	}

	return EMIListResponse{
		EMIs:       details,
		Total:      output.Total,
		Page:       output.Page,
		Limit:      output.Limit,
		TotalPages: output.TotalPages,
	}
}
