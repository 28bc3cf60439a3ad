package paymentmode

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListPaymentModesUseCase lists every payment mode, ordered by name.
type ListPaymentModesUseCase struct {
	paymentModeRepo adapter.PaymentModeRepository
}

// NewListPaymentModesUseCase creates a new ListPaymentModesUseCase instance.
func NewListPaymentModesUseCase(paymentModeRepo adapter.PaymentModeRepository) *ListPaymentModesUseCase {
	return &ListPaymentModesUseCase{paymentModeRepo: paymentModeRepo}
}

// Execute retrieves all payment modes.
func (uc *ListPaymentModesUseCase) Execute(ctx context.Context) ([]*entity.PaymentMode, error) {
	modes, err := uc.paymentModeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment modes: %w", err)
	}
	return modes, nil
}
