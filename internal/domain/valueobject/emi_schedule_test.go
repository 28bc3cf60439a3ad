package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestComputeEMISchedule_ZeroInterest(t *testing.T) {
	schedule, err := ComputeEMISchedule(d("100000"), 12, d("0"), d("0"), d("0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := schedule.MonthlyAmount.String(); got != "8333.33" {
		t.Errorf("expected monthly amount 8333.33, got %s", got)
	}
	if !schedule.TotalInterest.IsZero() {
		t.Errorf("expected zero interest, got %s", schedule.TotalInterest)
	}
	if got := schedule.TotalAmount.String(); got != "100000" {
		t.Errorf("expected total amount 100000, got %s", got)
	}
	if !schedule.TotalProcessingFees.IsZero() {
		t.Errorf("expected zero fees, got %s", schedule.TotalProcessingFees)
	}
}

func TestComputeEMISchedule_ReducingBalance(t *testing.T) {
	schedule, err := ComputeEMISchedule(d("100000"), 12, d("12"), d("0"), d("0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := schedule.MonthlyAmount.String(); got != "8884.88" {
		t.Errorf("expected monthly amount 8884.88, got %s", got)
	}
	// Totals come from the unrounded monthly installment, so they sit a cent
	// below monthly*tenure of the rounded figure.
	if got := schedule.TotalAmount.String(); got != "106618.55" {
		t.Errorf("expected total amount 106618.55, got %s", got)
	}
	if got := schedule.TotalInterest.String(); got != "6618.55" {
		t.Errorf("expected total interest 6618.55, got %s", got)
	}
	if !schedule.TotalAmount.Sub(schedule.TotalInterest).Equal(d("100000")) {
		t.Errorf("total minus interest should equal the principal, got %s", schedule.TotalAmount.Sub(schedule.TotalInterest))
	}
}

func TestComputeEMISchedule_ProcessingFeeWithGST(t *testing.T) {
	schedule, err := ComputeEMISchedule(d("100000"), 12, d("0"), d("1000"), d("18"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// GST applies on the processing fee, not the principal.
	if got := schedule.TotalProcessingFees.String(); got != "1180" {
		t.Errorf("expected total fees 1180, got %s", got)
	}
	if got := schedule.TotalAmount.String(); got != "101180" {
		t.Errorf("expected total amount 101180, got %s", got)
	}
	if !schedule.TotalInterest.IsZero() {
		t.Errorf("expected zero interest, got %s", schedule.TotalInterest)
	}
}

func TestComputeEMISchedule_SingleInstallment(t *testing.T) {
	schedule, err := ComputeEMISchedule(d("500"), 1, d("0"), d("0"), d("0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := schedule.MonthlyAmount.String(); got != "500" {
		t.Errorf("expected monthly amount 500, got %s", got)
	}
}

func TestComputeEMISchedule_InvalidInputs(t *testing.T) {
	tests := []struct {
		name          string
		principal     decimal.Decimal
		tenure        int
		annualRate    decimal.Decimal
		processingFee decimal.Decimal
		gstRate       decimal.Decimal
		wantErr       error
	}{
		{"zero principal", d("0"), 12, d("12"), d("0"), d("0"), domainerror.ErrInvalidPrincipal},
		{"negative principal", d("-1"), 12, d("12"), d("0"), d("0"), domainerror.ErrInvalidPrincipal},
		{"zero tenure", d("1000"), 0, d("12"), d("0"), d("0"), domainerror.ErrInvalidTenure},
		{"negative rate", d("1000"), 12, d("-1"), d("0"), d("0"), domainerror.ErrInvalidInterestRate},
		{"negative fee", d("1000"), 12, d("12"), d("-1"), d("0"), domainerror.ErrInvalidProcessingFee},
		{"negative gst", d("1000"), 12, d("12"), d("0"), d("-1"), domainerror.ErrInvalidGSTRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeEMISchedule(tt.principal, tt.tenure, tt.annualRate, tt.processingFee, tt.gstRate)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestComputeEMISchedule_MonthlyTimesTenureMatchesTotalBase(t *testing.T) {
	schedule, err := ComputeEMISchedule(d("250000"), 24, d("10.5"), d("2500"), d("18"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The rounded outputs drift from the exact product by at most one cent
	// per installment.
	base := schedule.TotalAmount.Sub(schedule.TotalProcessingFees)
	product := schedule.MonthlyAmount.Mul(decimal.NewFromInt(24))
	diff := base.Sub(product).Abs()
	if diff.GreaterThan(d("0.24")) {
		t.Errorf("total base %s drifts too far from monthly*tenure %s", base, product)
	}

	interestDiff := schedule.TotalInterest.Sub(base.Sub(d("250000"))).Abs()
	if interestDiff.GreaterThan(d("0.01")) {
		t.Errorf("total interest %s does not match total base minus principal %s", schedule.TotalInterest, base.Sub(d("250000")))
	}
}
