// Package valueobject contains domain value objects for the Expense Tracker system.
package valueobject

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// EMISchedule is the result of amortizing a principal over a fixed tenure.
// All monetary fields are rounded to two decimal places (half-up). The value
// is immutable once attached to an expense.
type EMISchedule struct {
	MonthlyAmount       decimal.Decimal
	TotalAmount         decimal.Decimal
	TotalInterest       decimal.Decimal
	TotalProcessingFees decimal.Decimal
}

var (
	hundred        = decimal.NewFromInt(100)
	monthsPerYear  = decimal.NewFromInt(12)
	decimalOne     = decimal.NewFromInt(1)
	moneyPrecision = int32(2)
)

// ComputeEMISchedule amortizes principal over tenure months using the
// reducing-balance EMI formula:
//
//	monthly = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate derived from the annual percentage rate. A zero
// rate degenerates to a straight principal/tenure split. GST applies on the
// processing fee only, never on the principal.
//
// Intermediate math is kept at full precision; only the four outputs are
// rounded, so total interest for a zero-rate schedule is exactly zero.
func ComputeEMISchedule(
	principal decimal.Decimal,
	tenureMonths int,
	annualInterestRate decimal.Decimal,
	processingFee decimal.Decimal,
	gstRate decimal.Decimal,
) (EMISchedule, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return EMISchedule{}, domainerror.ErrInvalidPrincipal
	}
	if tenureMonths < 1 {
		return EMISchedule{}, domainerror.ErrInvalidTenure
	}
	if annualInterestRate.IsNegative() {
		return EMISchedule{}, domainerror.ErrInvalidInterestRate
	}
	if processingFee.IsNegative() {
		return EMISchedule{}, domainerror.ErrInvalidProcessingFee
	}
	if gstRate.IsNegative() {
		return EMISchedule{}, domainerror.ErrInvalidGSTRate
	}

	tenure := decimal.NewFromInt(int64(tenureMonths))
	monthlyRate := annualInterestRate.Div(monthsPerYear).Div(hundred)

	var monthly decimal.Decimal
	if monthlyRate.IsZero() {
		monthly = principal.Div(tenure)
	} else {
		factor := decimalOne.Add(monthlyRate).Pow(tenure)
		monthly = principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(decimalOne))
	}

	totalBase := monthly.Mul(tenure)
	totalInterest := totalBase.Sub(principal)
	gstAmount := processingFee.Mul(gstRate).Div(hundred)
	totalFees := processingFee.Add(gstAmount)
	totalAmount := totalBase.Add(totalFees)

	return EMISchedule{
		MonthlyAmount:       monthly.Round(moneyPrecision),
		TotalAmount:         totalAmount.Round(moneyPrecision),
		TotalInterest:       totalInterest.Round(moneyPrecision),
		TotalProcessingFees: totalFees.Round(moneyPrecision),
	}, nil
}
