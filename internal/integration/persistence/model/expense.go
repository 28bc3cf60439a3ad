package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database. EMI columns are
// nullable; they are populated only when IsEMI is true.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title         string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category      string          `gorm:"type:varchar(30);not null;index"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	Description   string          `gorm:"type:text"`
	PaymentModeID uuid.UUID       `gorm:"type:uuid;not null;index"`

	IsEMI               bool             `gorm:"column:is_emi;default:false;index"`
	TenureMonths        *int             `gorm:"type:integer"`
	AnnualInterestRate  *decimal.Decimal `gorm:"type:decimal(8,4)"`
	ProcessingFee       *decimal.Decimal `gorm:"type:decimal(15,2)"`
	GSTRate             *decimal.Decimal `gorm:"column:gst_rate;type:decimal(8,4)"`
	MonthlyAmount       *decimal.Decimal `gorm:"type:decimal(15,2)"`
	TotalAmount         *decimal.Decimal `gorm:"type:decimal(15,2)"`
	TotalInterest       *decimal.Decimal `gorm:"type:decimal(15,2)"`
	TotalProcessingFees *decimal.Decimal `gorm:"type:decimal(15,2)"`

	IsPaid     bool            `gorm:"default:false"`
	PaidDate   *time.Time      `gorm:"type:timestamp"`
	PaidAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	PaymentMode *PaymentModeModel `gorm:"foreignKey:PaymentModeID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	expense := &entity.Expense{
		ID:            m.ID,
		Title:         m.Title,
		Amount:        m.Amount,
		Category:      entity.Category(m.Category),
		Date:          m.Date,
		Description:   m.Description,
		PaymentModeID: m.PaymentModeID,
		IsEMI:         m.IsEMI,
		IsPaid:        m.IsPaid,
		PaidDate:      m.PaidDate,
		PaidAmount:    m.PaidAmount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if m.IsEMI {
		expense.EMI = &entity.EMITerms{
			TenureMonths:        derefInt(m.TenureMonths),
			AnnualInterestRate:  derefDecimal(m.AnnualInterestRate),
			ProcessingFee:       derefDecimal(m.ProcessingFee),
			GSTRate:             derefDecimal(m.GSTRate),
			MonthlyAmount:       derefDecimal(m.MonthlyAmount),
			TotalAmount:         derefDecimal(m.TotalAmount),
			TotalInterest:       derefDecimal(m.TotalInterest),
			TotalProcessingFees: derefDecimal(m.TotalProcessingFees),
		}
	}
	return expense
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	m := &ExpenseModel{
		ID:            expense.ID,
		Title:         expense.Title,
		Amount:        expense.Amount,
		Category:      string(expense.Category),
		Date:          expense.Date,
		Description:   expense.Description,
		PaymentModeID: expense.PaymentModeID,
		IsEMI:         expense.IsEMI,
		IsPaid:        expense.IsPaid,
		PaidDate:      expense.PaidDate,
		PaidAmount:    expense.PaidAmount,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}

	if expense.EMI != nil {
		tenure := expense.EMI.TenureMonths
		m.TenureMonths = &tenure
		m.AnnualInterestRate = decimalPtr(expense.EMI.AnnualInterestRate)
		m.ProcessingFee = decimalPtr(expense.EMI.ProcessingFee)
		m.GSTRate = decimalPtr(expense.EMI.GSTRate)
		m.MonthlyAmount = decimalPtr(expense.EMI.MonthlyAmount)
		m.TotalAmount = decimalPtr(expense.EMI.TotalAmount)
		m.TotalInterest = decimalPtr(expense.EMI.TotalInterest)
		m.TotalProcessingFees = decimalPtr(expense.EMI.TotalProcessingFees)
	}
	return m
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefDecimal(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func decimalPtr(v decimal.Decimal) *decimal.Decimal {
	return &v
}
