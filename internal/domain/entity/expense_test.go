package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func newPlainExpense(amount string) *Expense {
	return NewExpense(
		"groceries",
		d(amount),
		CategoryFood,
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		"",
		uuid.New(),
		nil,
	)
}

func newInstallmentExpense(principal, monthly, total string, tenure int) *Expense {
	return NewExpense(
		"laptop",
		d(principal),
		CategoryShopping,
		time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		"",
		uuid.New(),
		&EMITerms{
			TenureMonths:        tenure,
			AnnualInterestRate:  d("12"),
			ProcessingFee:       decimal.Zero,
			GSTRate:             decimal.Zero,
			MonthlyAmount:       d(monthly),
			TotalAmount:         d(total),
			TotalInterest:       d(total).Sub(d(principal)),
			TotalProcessingFees: decimal.Zero,
		},
	)
}

func TestExpense_MarkPaid_Plain(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("settles full amount by default", func(t *testing.T) {
		expense := newPlainExpense("500")

		if changed := expense.MarkPaid(nil, nil, now); !changed {
			t.Fatal("expected first mark-paid to report a change")
		}
		if !expense.IsPaid {
			t.Error("expected expense to be paid")
		}
		if !expense.PaidAmount.Equal(d("500")) {
			t.Errorf("expected paid amount 500, got %s", expense.PaidAmount)
		}
		if expense.PaidDate == nil || !expense.PaidDate.Equal(now) {
			t.Errorf("expected paid date %v, got %v", now, expense.PaidDate)
		}
	})

	t.Run("honors explicit paid amount and date", func(t *testing.T) {
		expense := newPlainExpense("500")
		partial := d("200")
		paidOn := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

		if changed := expense.MarkPaid(&partial, &paidOn, now); !changed {
			t.Fatal("expected mark-paid to report a change")
		}
		if !expense.PaidAmount.Equal(partial) {
			t.Errorf("expected paid amount 200, got %s", expense.PaidAmount)
		}
		if expense.PaidDate == nil || !expense.PaidDate.Equal(paidOn) {
			t.Errorf("expected paid date %v, got %v", paidOn, expense.PaidDate)
		}
	})

	t.Run("second mark-paid is a no-op", func(t *testing.T) {
		expense := newPlainExpense("500")
		expense.MarkPaid(nil, nil, now)

		if changed := expense.MarkPaid(nil, nil, now.Add(time.Hour)); changed {
			t.Error("expected repeated mark-paid to report no change")
		}
		if expense.PaidDate == nil || !expense.PaidDate.Equal(now) {
			t.Errorf("expected paid date to stay %v, got %v", now, expense.PaidDate)
		}
	})
}

func TestExpense_MarkUnpaid_Plain(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("clears the settlement", func(t *testing.T) {
		expense := newPlainExpense("500")
		expense.MarkPaid(nil, nil, now)

		if changed := expense.MarkUnpaid(now.Add(time.Hour)); !changed {
			t.Fatal("expected mark-unpaid to report a change")
		}
		if expense.IsPaid {
			t.Error("expected expense to be unpaid")
		}
		if !expense.PaidAmount.IsZero() {
			t.Errorf("expected paid amount zero, got %s", expense.PaidAmount)
		}
		if expense.PaidDate != nil {
			t.Errorf("expected paid date cleared, got %v", expense.PaidDate)
		}
	})

	t.Run("no-op when already unpaid", func(t *testing.T) {
		expense := newPlainExpense("500")

		if changed := expense.MarkUnpaid(now); changed {
			t.Error("expected mark-unpaid on a fresh expense to report no change")
		}
	})
}

func TestExpense_MarkPaid_Installments(t *testing.T) {
	now := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("accumulates one installment per call", func(t *testing.T) {
		expense := newInstallmentExpense("1000", "350", "1050", 3)

		expense.MarkPaid(nil, nil, now)
		if !expense.PaidAmount.Equal(d("350")) {
			t.Errorf("expected paid amount 350, got %s", expense.PaidAmount)
		}
		if expense.IsPaid {
			t.Error("expected expense to remain unpaid mid-schedule")
		}

		expense.MarkPaid(nil, nil, now)
		if !expense.PaidAmount.Equal(d("700")) {
			t.Errorf("expected paid amount 700, got %s", expense.PaidAmount)
		}
	})

	t.Run("caps at the financed total", func(t *testing.T) {
		expense := newInstallmentExpense("1000", "400", "1050", 3)
		expense.PaidAmount = d("800")

		if changed := expense.MarkPaid(nil, nil, now); !changed {
			t.Fatal("expected mark-paid to report a change")
		}
		if !expense.PaidAmount.Equal(d("1050")) {
			t.Errorf("expected paid amount capped at 1050, got %s", expense.PaidAmount)
		}
		if !expense.IsPaid {
			t.Error("expected expense to be paid at the cap")
		}
		if changed := expense.MarkPaid(nil, nil, now); changed {
			t.Error("expected mark-paid at the cap to report no change")
		}
	})
}

func TestExpense_MarkUnpaid_Installments(t *testing.T) {
	now := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("steps back one installment", func(t *testing.T) {
		expense := newInstallmentExpense("1000", "350", "1050", 3)
		expense.PaidAmount = d("1050")
		expense.IsPaid = true

		if changed := expense.MarkUnpaid(now); !changed {
			t.Fatal("expected mark-unpaid to report a change")
		}
		if !expense.PaidAmount.Equal(d("700")) {
			t.Errorf("expected paid amount 700, got %s", expense.PaidAmount)
		}
		if expense.IsPaid {
			t.Error("expected expense to be unpaid after stepping back")
		}
	})

	t.Run("floors at zero", func(t *testing.T) {
		expense := newInstallmentExpense("1000", "350", "1050", 3)
		expense.PaidAmount = d("100")

		expense.MarkUnpaid(now)
		if !expense.PaidAmount.IsZero() {
			t.Errorf("expected paid amount floored at zero, got %s", expense.PaidAmount)
		}
		if changed := expense.MarkUnpaid(now); changed {
			t.Error("expected mark-unpaid at the floor to report no change")
		}
	})

	t.Run("mark-paid then mark-unpaid restores the balance", func(t *testing.T) {
		expense := newInstallmentExpense("1000", "350", "1050", 3)
		expense.PaidAmount = d("350")

		expense.MarkPaid(nil, nil, now)
		expense.MarkUnpaid(now)
		if !expense.PaidAmount.Equal(d("350")) {
			t.Errorf("expected paid amount back at 350, got %s", expense.PaidAmount)
		}
	})
}

func TestExpense_RemainingInstallments(t *testing.T) {
	tests := []struct {
		name       string
		paidAmount string
		want       int
	}{
		{"nothing paid", "0", 3},
		{"one installment", "350", 2},
		{"partial installment rounds up", "500", 2},
		{"fully paid", "1050", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := newInstallmentExpense("1000", "350", "1050", 3)
			expense.PaidAmount = d(tt.paidAmount)

			if got := expense.RemainingInstallments(); got != tt.want {
				t.Errorf("expected %d remaining installments, got %d", tt.want, got)
			}
		})
	}

	t.Run("zero for plain expenses", func(t *testing.T) {
		if got := newPlainExpense("500").RemainingInstallments(); got != 0 {
			t.Errorf("expected 0 remaining installments, got %d", got)
		}
	})
}

func TestExpense_EffectivePaidAmount(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("zero for an unpaid plain expense", func(t *testing.T) {
		if got := newPlainExpense("500").EffectivePaidAmount(); !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})

	t.Run("full amount for a paid plain expense", func(t *testing.T) {
		expense := newPlainExpense("500")
		partial := d("200")
		expense.MarkPaid(&partial, nil, now)

		if got := expense.EffectivePaidAmount(); !got.Equal(d("500")) {
			t.Errorf("expected 500, got %s", got)
		}
	})

	t.Run("accumulated amount for installments", func(t *testing.T) {
		expense := newInstallmentExpense("1000", "350", "1050", 3)
		expense.PaidAmount = d("700")

		if got := expense.EffectivePaidAmount(); !got.Equal(d("700")) {
			t.Errorf("expected 700, got %s", got)
		}
	})
}
