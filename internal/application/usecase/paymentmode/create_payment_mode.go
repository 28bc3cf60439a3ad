// Package paymentmode contains payment mode CRUD use cases.
package paymentmode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreatePaymentModeInput represents the input for creating a payment mode.
type CreatePaymentModeInput struct {
	Name  string
	Type  string
	Icon  string
	Color string
}

// CreatePaymentModeUseCase creates a new payment mode.
type CreatePaymentModeUseCase struct {
	paymentModeRepo adapter.PaymentModeRepository
	cache           adapter.AggregateCache
}

// NewCreatePaymentModeUseCase creates a new CreatePaymentModeUseCase instance.
func NewCreatePaymentModeUseCase(
	paymentModeRepo adapter.PaymentModeRepository,
	cache adapter.AggregateCache,
) *CreatePaymentModeUseCase {
	return &CreatePaymentModeUseCase{
		paymentModeRepo: paymentModeRepo,
		cache:           cache,
	}
}

// Execute validates and persists a new payment mode. Names are unique.
func (uc *CreatePaymentModeUseCase) Execute(ctx context.Context, input CreatePaymentModeInput) (*entity.PaymentMode, error) {
	modeType, err := validatePaymentModeFields(input.Name, input.Type)
	if err != nil {
		return nil, err
	}

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

	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultPaymentModeIcon
	}
	color := input.Color
	if color == "" {
		color = entity.DefaultPaymentModeColor
	}

	mode := entity.NewPaymentMode(input.Name, modeType, icon, color)
	if err := uc.paymentModeRepo.Create(ctx, mode); err != nil {
		return nil, fmt.Errorf("failed to create payment mode: %w", err)
	}

	invalidateAggregates(ctx, uc.cache, mode.ID)
	return mode, nil
}

func validatePaymentModeFields(name, modeType string) (entity.PaymentModeType, error) {
	if name == "" {
		return "", domainerror.NewPaymentModeError(
			domainerror.ErrCodePaymentModeNameRequired,
			"payment mode name is required",
			domainerror.ErrPaymentModeNameRequired,
		)
	}
	t := entity.PaymentModeType(modeType)
	if !t.IsValid() {
		return "", domainerror.NewPaymentModeError(
			domainerror.ErrCodeInvalidPaymentModeType,
			fmt.Sprintf("invalid payment mode type: %s", modeType),
			domainerror.ErrInvalidPaymentModeType,
		)
	}
	return t, nil
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

// invalidateAggregates retires all cached derived views after a mutation.
func invalidateAggregates(ctx context.Context, cache adapter.AggregateCache, modeID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate aggregate cache",
			"paymentModeID", modeID,
			"error", err,
		)
	}
}
