package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreatePaymentModeRequest represents the request body for payment mode creation.
type CreatePaymentModeRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Type  string `json:"type" binding:"required,oneof=credit_card debit_card bank_account upi cash"`
	Icon  string `json:"icon,omitempty" binding:"omitempty,max=50"`
	Color string `json:"color,omitempty" binding:"omitempty,max=20"`
}

// UpdatePaymentModeRequest represents the request body for payment mode update.
type UpdatePaymentModeRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Type  string `json:"type" binding:"required,oneof=credit_card debit_card bank_account upi cash"`
	Icon  string `json:"icon,omitempty" binding:"omitempty,max=50"`
	Color string `json:"color,omitempty" binding:"omitempty,max=20"`
}

// PaymentModeResponse represents a single payment mode in API responses.
type PaymentModeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToPaymentModeResponse converts a domain PaymentMode entity to its response DTO.
func ToPaymentModeResponse(mode *entity.PaymentMode) PaymentModeResponse {
	return PaymentModeResponse{
		ID:        mode.ID.String(),
		Name:      mode.Name,
		Type:      string(mode.Type),
		Icon:      mode.Icon,
		Color:     mode.Color,
		CreatedAt: mode.CreatedAt,
		UpdatedAt: mode.UpdatedAt,
	}
}

// ToPaymentModeListResponse converts payment mode entities to response DTOs.
func ToPaymentModeListResponse(modes []*entity.PaymentMode) []PaymentModeResponse {
	responses := make([]PaymentModeResponse, len(modes))
	for i, mode := range modes {
		responses[i] = ToPaymentModeResponse(mode)
	}
	return responses
}
