package paymentmode

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeletePaymentModeUseCase removes a payment mode. Deletion never orphans
// expenses; a mode that is still referenced cannot be deleted.
type DeletePaymentModeUseCase struct {
	paymentModeRepo adapter.PaymentModeRepository
	cache           adapter.AggregateCache
}

// NewDeletePaymentModeUseCase creates a new DeletePaymentModeUseCase instance.
func NewDeletePaymentModeUseCase(
	paymentModeRepo adapter.PaymentModeRepository,
	cache adapter.AggregateCache,
) *DeletePaymentModeUseCase {
	return &DeletePaymentModeUseCase{
		paymentModeRepo: paymentModeRepo,
		cache:           cache,
	}
}

// Execute deletes the payment mode with the given id.
func (uc *DeletePaymentModeUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.paymentModeRepo.FindByID(ctx, id); err != nil {
		return wrapPaymentModeLookupError(err)
	}

	count, err := uc.paymentModeRepo.CountExpenses(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count expenses for payment mode: %w", err)
	}
	if count > 0 {
		return domainerror.NewPaymentModeError(
			domainerror.ErrCodePaymentModeInUse,
			fmt.Sprintf("payment mode has %d expenses and cannot be deleted", count),
			domainerror.ErrPaymentModeInUse,
		)
	}

	if err := uc.paymentModeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment mode: %w", err)
	}

	invalidateAggregates(ctx, uc.cache, id)
	return nil
}
