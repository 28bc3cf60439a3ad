package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EMITerms holds the installment terms of an expense financed as an EMI.
// The derived amounts are computed once by the amortization calculator when
// the expense is created and are never recomputed from stale inputs; editing
// tenure or rate produces a fresh calculation.
type EMITerms struct {
	TenureMonths       int
	AnnualInterestRate decimal.Decimal // percent per year
	ProcessingFee      decimal.Decimal
	GSTRate            decimal.Decimal // percent, applied on the processing fee

	// Derived, persisted alongside the inputs.
	MonthlyAmount       decimal.Decimal
	TotalAmount         decimal.Decimal
	TotalInterest       decimal.Decimal
	TotalProcessingFees decimal.Decimal
}

// Expense represents a single ledger entry. Exactly one lifecycle is
// populated: a plain expense uses IsPaid/PaidDate/PaidAmount as a one-shot
// settlement, an installment expense (IsEMI) accumulates PaidAmount one
// monthly installment at a time. Amount always denotes the principal, never
// the financed total.
type Expense struct {
	ID            uuid.UUID
	Title         string
	Amount        decimal.Decimal
	Category      Category
	Date          time.Time
	Description   string
	PaymentModeID uuid.UUID

	IsEMI bool
	EMI   *EMITerms

	IsPaid     bool
	PaidDate   *time.Time
	PaidAmount decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	title string,
	amount decimal.Decimal,
	category Category,
	date time.Time,
	description string,
	paymentModeID uuid.UUID,
	emi *EMITerms,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:            uuid.New(),
		Title:         title,
		Amount:        amount,
		Category:      category,
		Date:          date,
		Description:   description,
		PaymentModeID: paymentModeID,
		IsEMI:         emi != nil,
		EMI:           emi,
		PaidAmount:    decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// MarkPaid advances the paid lifecycle of the expense. For a plain expense it
// settles the full (or given) amount; calling it again once paid is a no-op.
// For an installment expense it settles exactly one monthly installment,
// capped at the financed total; a call at the cap is a no-op.
// It returns false when the call changed nothing.
func (e *Expense) MarkPaid(paidAmount *decimal.Decimal, paidDate *time.Time, now time.Time) bool {
	if e.IsEMI {
		return e.settleInstallment(paidDate, now)
	}

	if e.IsPaid {
		return false
	}

	e.IsPaid = true
	if paidAmount != nil {
		e.PaidAmount = *paidAmount
	} else {
		e.PaidAmount = e.Amount
	}
	e.PaidDate = paidDateOrNow(paidDate, now)
	e.UpdatedAt = now

	return true
}

func (e *Expense) settleInstallment(paidDate *time.Time, now time.Time) bool {
	if e.PaidAmount.GreaterThanOrEqual(e.EMI.TotalAmount) {
		return false
	}

	e.PaidAmount = e.PaidAmount.Add(e.EMI.MonthlyAmount)
	if e.PaidAmount.GreaterThanOrEqual(e.EMI.TotalAmount) {
		e.PaidAmount = e.EMI.TotalAmount
		e.IsPaid = true
	} else {
		e.IsPaid = false
	}
	e.PaidDate = paidDateOrNow(paidDate, now)
	e.UpdatedAt = now

	return true
}

// MarkUnpaid reverses the paid lifecycle. A plain expense is fully cleared;
// an installment expense steps back exactly one monthly installment, floored
// at zero. A call at the floor is a no-op. It returns false when the call
// changed nothing.
func (e *Expense) MarkUnpaid(now time.Time) bool {
	if e.IsEMI {
		if e.PaidAmount.LessThanOrEqual(decimal.Zero) {
			return false
		}
		e.PaidAmount = e.PaidAmount.Sub(e.EMI.MonthlyAmount)
		if e.PaidAmount.LessThan(decimal.Zero) {
			e.PaidAmount = decimal.Zero
		}
		e.IsPaid = false
		e.UpdatedAt = now
		return true
	}

	if !e.IsPaid && e.PaidAmount.IsZero() && e.PaidDate == nil {
		return false
	}

	e.IsPaid = false
	e.PaidDate = nil
	e.PaidAmount = decimal.Zero
	e.UpdatedAt = now

	return true
}

// RemainingAmount returns the outstanding balance of an installment expense.
// It is zero for plain expenses and never negative.
func (e *Expense) RemainingAmount() decimal.Decimal {
	if !e.IsEMI {
		return decimal.Zero
	}
	remaining := e.EMI.TotalAmount.Sub(e.PaidAmount)
	if remaining.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return remaining
}

// RemainingInstallments returns the number of monthly installments still
// outstanding, zero once the financed total is fully paid.
func (e *Expense) RemainingInstallments() int {
	if !e.IsEMI || e.EMI.MonthlyAmount.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	remaining := e.RemainingAmount()
	if remaining.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(remaining.Div(e.EMI.MonthlyAmount).Ceil().IntPart())
}

// EffectivePaidAmount returns the portion of the expense that counts as
// settled for bill views: the accumulated PaidAmount for installments, the
// full amount for a paid plain expense, zero otherwise.
func (e *Expense) EffectivePaidAmount() decimal.Decimal {
	if e.IsEMI {
		return e.PaidAmount
	}
	if e.IsPaid {
		return e.Amount
	}
	return decimal.Zero
}

func paidDateOrNow(paidDate *time.Time, now time.Time) *time.Time {
	if paidDate != nil {
		d := *paidDate
		return &d
	}
	d := now
	return &d
}
