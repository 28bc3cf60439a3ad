package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthKeyLayout is the time layout for budget month keys ("YYYY-MM").
const MonthKeyLayout = "2006-01"

// Budget represents a monthly spending ceiling for one category.
// A category has at most one budget per month.
type Budget struct {
	ID        uuid.UUID
	Category  Category
	Amount    decimal.Decimal
	Month     string // "YYYY-MM"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(category Category, amount decimal.Decimal, month string) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		Category:  category,
		Amount:    amount,
		Month:     month,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
