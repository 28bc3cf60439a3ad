package paymentmode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdatePaymentModeInput represents the input for updating a payment mode.
type UpdatePaymentModeInput struct {
	ID    uuid.UUID
	Name  string
	Type  string
	Icon  string
	Color string
}

// UpdatePaymentModeUseCase updates an existing payment mode.
type UpdatePaymentModeUseCase struct {
	paymentModeRepo adapter.PaymentModeRepository
	cache           adapter.AggregateCache
}

// NewUpdatePaymentModeUseCase creates a new UpdatePaymentModeUseCase instance.
func NewUpdatePaymentModeUseCase(
	paymentModeRepo adapter.PaymentModeRepository,
	cache adapter.AggregateCache,
) *UpdatePaymentModeUseCase {
	return &UpdatePaymentModeUseCase{
		paymentModeRepo: paymentModeRepo,
		cache:           cache,
	}
}

// Execute validates and applies the update. Renames keep names unique.
func (uc *UpdatePaymentModeUseCase) Execute(ctx context.Context, input UpdatePaymentModeInput) (*entity.PaymentMode, error) {
	modeType, err := validatePaymentModeFields(input.Name, input.Type)
	if err != nil {
		return nil, err
	}

	mode, err := uc.paymentModeRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, wrapPaymentModeLookupError(err)
	}

	if input.Name != mode.Name {
		existing, err := uc.paymentModeRepo.FindByName(ctx, input.Name)
		if err != nil && !errors.Is(err, domainerror.ErrPaymentModeNotFound) {
			return nil, fmt.Errorf("failed to check payment mode name: %w", err)
		}
		if existing != nil {
			return nil, domainerror.NewPaymentModeError(
				domainerror.ErrCodePaymentModeNameTaken,
				fmt.Sprintf("payment mode %q already exists", input.Name),
				domainerror.ErrPaymentModeNameTaken,
			)
		}
	}

	mode.Name = input.Name
	mode.Type = modeType
	if input.Icon != "" {
		mode.Icon = input.Icon
	}
	if input.Color != "" {
		mode.Color = input.Color
	}
	mode.UpdatedAt = time.Now().UTC()

	if err := uc.paymentModeRepo.Update(ctx, mode); err != nil {
		return nil, fmt.Errorf("failed to update payment mode: %w", err)
	}

	invalidateAggregates(ctx, uc.cache, mode.ID)
	return mode, nil
}
