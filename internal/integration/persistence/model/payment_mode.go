// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// PaymentModeModel represents the payment_modes table in the database.
type PaymentModeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Type      string    `gorm:"type:varchar(20);not null"`
	Icon      string    `gorm:"type:varchar(50);not null"`
	Color     string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PaymentModeModel.
func (PaymentModeModel) TableName() string {
	return "payment_modes"
}

// ToEntity converts a PaymentModeModel to a domain PaymentMode entity.
func (m *PaymentModeModel) ToEntity() *entity.PaymentMode {
	return &entity.PaymentMode{
		ID:        m.ID,
		Name:      m.Name,
		Type:      entity.PaymentModeType(m.Type),
		Icon:      m.Icon,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PaymentModeFromEntity creates a PaymentModeModel from a domain PaymentMode entity.
func PaymentModeFromEntity(mode *entity.PaymentMode) *PaymentModeModel {
	return &PaymentModeModel{
		ID:        mode.ID,
		Name:      mode.Name,
		Type:      string(mode.Type),
		Icon:      mode.Icon,
		Color:     mode.Color,
		CreatedAt: mode.CreatedAt,
		UpdatedAt: mode.UpdatedAt,
	}
}
