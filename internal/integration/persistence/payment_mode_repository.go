// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// paymentModeRepository implements the adapter.PaymentModeRepository interface.
type paymentModeRepository struct {
	db *gorm.DB
}

// NewPaymentModeRepository creates a new payment mode repository instance.
func NewPaymentModeRepository(db *gorm.DB) adapter.PaymentModeRepository {
	return &paymentModeRepository{
		db: db,
	}
}

// Create creates a new payment mode in the database.
func (r *paymentModeRepository) Create(ctx context.Context, mode *entity.PaymentMode) error {
	modeModel := model.PaymentModeFromEntity(mode)
	result := r.db.WithContext(ctx).Create(modeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a payment mode by its ID.
func (r *paymentModeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMode, error) {
	var modeModel model.PaymentModeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&modeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentModeNotFound
		}
		return nil, result.Error
	}
	return modeModel.ToEntity(), nil
}

// FindByName retrieves a payment mode by its unique name.
func (r *paymentModeRepository) FindByName(ctx context.Context, name string) (*entity.PaymentMode, error) {
	var modeModel model.PaymentModeModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&modeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentModeNotFound
		}
		return nil, result.Error
	}
	return modeModel.ToEntity(), nil
}

// FindAll retrieves every payment mode, ordered by name.
func (r *paymentModeRepository) FindAll(ctx context.Context) ([]*entity.PaymentMode, error) {
	var modeModels []model.PaymentModeModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&modeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	modes := make([]*entity.PaymentMode, len(modeModels))
	for i, mm := range modeModels {
		modes[i] = mm.ToEntity()
	}
	return modes, nil
}

// Update updates an existing payment mode in the database.
func (r *paymentModeRepository) Update(ctx context.Context, mode *entity.PaymentMode) error {
	modeModel := model.PaymentModeFromEntity(mode)
	result := r.db.WithContext(ctx).Save(modeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a payment mode from the database.
func (r *paymentModeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PaymentModeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPaymentModeNotFound
	}
	return nil
}

// CountExpenses returns the number of expenses referencing the payment mode.
func (r *paymentModeRepository) CountExpenses(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("payment_mode_id = ?", id).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
