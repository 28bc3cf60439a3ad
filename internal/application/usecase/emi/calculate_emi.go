// Package emi contains EMI-related use cases.
package emi

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// CalculateEMIInput represents the input for an EMI calculation.
type CalculateEMIInput struct {
	Principal          decimal.Decimal
	TenureMonths       int
	AnnualInterestRate decimal.Decimal
	ProcessingFee      decimal.Decimal
	GSTRate            decimal.Decimal
}

// CalculateEMIOutput represents the output of an EMI calculation. The input
// terms are echoed back so callers can persist the schedule together with the
// arguments that produced it.
type CalculateEMIOutput struct {
	Principal          decimal.Decimal
	TenureMonths       int
	AnnualInterestRate decimal.Decimal
	ProcessingFee      decimal.Decimal
	GSTRate            decimal.Decimal

	MonthlyAmount       decimal.Decimal
	TotalAmount         decimal.Decimal
	TotalInterest       decimal.Decimal
	TotalProcessingFees decimal.Decimal
}

// CalculateEMIUseCase amortizes a principal into an installment schedule.
// It is a pure function of its input and has no dependencies.
type CalculateEMIUseCase struct{}

// NewCalculateEMIUseCase creates a new CalculateEMIUseCase instance.
func NewCalculateEMIUseCase() *CalculateEMIUseCase {
	return &CalculateEMIUseCase{}
}

// Execute performs the EMI calculation.
func (uc *CalculateEMIUseCase) Execute(_ context.Context, input CalculateEMIInput) (*CalculateEMIOutput, error) {
	schedule, err := valueobject.ComputeEMISchedule(
		input.Principal,
		input.TenureMonths,
		input.AnnualInterestRate,
		input.ProcessingFee,
		input.GSTRate,
	)
	if err != nil {
		return nil, wrapCalculationError(err)
	}

	return &CalculateEMIOutput{
		Principal:           input.Principal,
		TenureMonths:        input.TenureMonths,
		AnnualInterestRate:  input.AnnualInterestRate,
		ProcessingFee:       input.ProcessingFee,
		GSTRate:             input.GSTRate,
		MonthlyAmount:       schedule.MonthlyAmount,
		TotalAmount:         schedule.TotalAmount,
		TotalInterest:       schedule.TotalInterest,
		TotalProcessingFees: schedule.TotalProcessingFees,
	}, nil
}

// wrapCalculationError maps calculator sentinels to coded EMI errors.
func wrapCalculationError(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrInvalidPrincipal):
		return domainerror.NewEMIError(domainerror.ErrCodeInvalidPrincipal, "principal must be greater than zero", err)
	case errors.Is(err, domainerror.ErrInvalidTenure):
		return domainerror.NewEMIError(domainerror.ErrCodeInvalidTenure, "tenure must be at least one month", err)
	case errors.Is(err, domainerror.ErrInvalidInterestRate):
		return domainerror.NewEMIError(domainerror.ErrCodeInvalidInterestRate, "interest rate must not be negative", err)
	case errors.Is(err, domainerror.ErrInvalidProcessingFee):
		return domainerror.NewEMIError(domainerror.ErrCodeInvalidProcessingFee, "processing fee must not be negative", err)
	case errors.Is(err, domainerror.ErrInvalidGSTRate):
		return domainerror.NewEMIError(domainerror.ErrCodeInvalidGSTRate, "gst rate must not be negative", err)
	default:
		return err
	}
}
