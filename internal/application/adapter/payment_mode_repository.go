package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// PaymentModeRepository defines the interface for payment mode persistence operations.
type PaymentModeRepository interface {
	// Create creates a new payment mode in the database.
	Create(ctx context.Context, mode *entity.PaymentMode) error

	// FindByID retrieves a payment mode by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMode, error)

	// FindByName retrieves a payment mode by its unique name.
	FindByName(ctx context.Context, name string) (*entity.PaymentMode, error)

	// FindAll retrieves every payment mode, ordered by name.
	FindAll(ctx context.Context) ([]*entity.PaymentMode, error)

	// Update updates an existing payment mode in the database.
	Update(ctx context.Context, mode *entity.PaymentMode) error

	// Delete removes a payment mode from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountExpenses returns the number of expenses referencing the payment mode.
	CountExpenses(ctx context.Context, id uuid.UUID) (int64, error)
}
