package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModeType represents the kind of payment instrument.
type PaymentModeType string

const (
	PaymentModeTypeCreditCard  PaymentModeType = "credit_card"
	PaymentModeTypeDebitCard   PaymentModeType = "debit_card"
	PaymentModeTypeBankAccount PaymentModeType = "bank_account"
	PaymentModeTypeUPI         PaymentModeType = "upi"
	PaymentModeTypeCash        PaymentModeType = "cash"
)

// IsValid reports whether the payment mode type is a member of the closed set.
func (t PaymentModeType) IsValid() bool {
	switch t {
	case PaymentModeTypeCreditCard,
		PaymentModeTypeDebitCard,
		PaymentModeTypeBankAccount,
		PaymentModeTypeUPI,
		PaymentModeTypeCash:
		return true
	}
	return false
}

// DefaultPaymentModeIcon is the default display icon for payment modes.
const DefaultPaymentModeIcon = "CreditCard"

// DefaultPaymentModeColor is the default display color for payment modes.
const DefaultPaymentModeColor = "#FF6B6B"

// PaymentMode represents a payment instrument expenses are charged against.
type PaymentMode struct {
	ID        uuid.UUID
	Name      string
	Type      PaymentModeType
	Icon      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPaymentMode creates a new PaymentMode entity.
// Note: Defaulting logic for icon and color should be applied in the
// Application layer (UseCase) before calling this constructor.
func NewPaymentMode(name string, modeType PaymentModeType, icon, color string) *PaymentMode {
	now := time.Now().UTC()

	return &PaymentMode{
		ID:        uuid.New(),
		Name:      name,
		Type:      modeType,
		Icon:      icon,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
