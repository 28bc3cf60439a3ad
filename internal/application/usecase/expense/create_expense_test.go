package expense

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo(expenses ...*entity.Expense) *fakeExpenseRepo {
	repo := &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
	for _, expense := range expenses {
		repo.expenses[expense.ID] = expense
	}
	return repo
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	return expense, nil
}

func (r *fakeExpenseRepo) FindByFilter(_ context.Context, filter adapter.ExpenseFilter, pagination adapter.ExpensePagination) (*adapter.ExpenseListResult, error) {
	matched := make([]*entity.Expense, 0, len(r.expenses))
	for _, expense := range r.expenses {
		if filter.Category != nil && expense.Category != *filter.Category {
			continue
		}
		if filter.OnlyEMI && !expense.IsEMI {
			continue
		}
		matched = append(matched, expense)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	return &adapter.ExpenseListResult{
		Expenses:   matched,
		Total:      int64(len(matched)),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	if _, ok := r.expenses[expense.ID]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.expenses[id]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

type fakePaymentModeRepo struct {
	modes map[uuid.UUID]*entity.PaymentMode
}

func newFakePaymentModeRepo(modes ...*entity.PaymentMode) *fakePaymentModeRepo {
	repo := &fakePaymentModeRepo{modes: make(map[uuid.UUID]*entity.PaymentMode)}
	for _, mode := range modes {
		repo.modes[mode.ID] = mode
	}
	return repo
}

func (r *fakePaymentModeRepo) Create(_ context.Context, mode *entity.PaymentMode) error {
	r.modes[mode.ID] = mode
	return nil
}

func (r *fakePaymentModeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentMode, error) {
	mode, ok := r.modes[id]
	if !ok {
		return nil, domainerror.ErrPaymentModeNotFound
	}
	return mode, nil
}

func (r *fakePaymentModeRepo) FindByName(_ context.Context, name string) (*entity.PaymentMode, error) {
	for _, mode := range r.modes {
		if mode.Name == name {
			return mode, nil
		}
	}
	return nil, domainerror.ErrPaymentModeNotFound
}

func (r *fakePaymentModeRepo) FindAll(_ context.Context) ([]*entity.PaymentMode, error) {
	all := make([]*entity.PaymentMode, 0, len(r.modes))
	for _, mode := range r.modes {
		all = append(all, mode)
	}
	return all, nil
}

func (r *fakePaymentModeRepo) Update(_ context.Context, mode *entity.PaymentMode) error {
	r.modes[mode.ID] = mode
	return nil
}

func (r *fakePaymentModeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.modes, id)
	return nil
}

func (r *fakePaymentModeRepo) CountExpenses(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeAggregateCache struct {
	invalidations int
}

func (c *fakeAggregateCache) Version(_ context.Context) (int64, error) { return 0, nil }

func (c *fakeAggregateCache) Invalidate(_ context.Context) error {
	c.invalidations++
	return nil
}

func (c *fakeAggregateCache) GetAggregate(_ context.Context, _ int64, _ string, _ any) (bool, error) {
	return false, nil
}

func (c *fakeAggregateCache) SetAggregate(_ context.Context, _ int64, _ string, _ any) error {
	return nil
}

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

var testDate = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

func TestCreateExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a plain expense", func(t *testing.T) {
		mode := entity.NewPaymentMode("Visa", entity.PaymentModeTypeCreditCard, "", "")
		repo := newFakeExpenseRepo()
		cache := &fakeAggregateCache{}
		uc := NewCreateExpenseUseCase(repo, newFakePaymentModeRepo(mode), cache)

		expense, err := uc.Execute(ctx, CreateExpenseInput{
			Title:         "groceries",
			Amount:        d("500"),
			Category:      "Food",
			Date:          testDate,
			PaymentModeID: mode.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expense.IsEMI || expense.EMI != nil {
			t.Error("expected a plain expense")
		}
		if expense.IsPaid || !expense.PaidAmount.IsZero() {
			t.Error("expected a new expense to start unpaid")
		}
		if len(repo.expenses) != 1 {
			t.Errorf("expected 1 persisted expense, got %d", len(repo.expenses))
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("computes the installment schedule once at creation", func(t *testing.T) {
		mode := entity.NewPaymentMode("Visa", entity.PaymentModeTypeCreditCard, "", "")
		uc := NewCreateExpenseUseCase(newFakeExpenseRepo(), newFakePaymentModeRepo(mode), &fakeAggregateCache{})

		expense, err := uc.Execute(ctx, CreateExpenseInput{
			Title:         "laptop",
			Amount:        d("100000"),
			Category:      "Shopping",
			Date:          testDate,
			PaymentModeID: mode.ID,
			EMI: &EMITermsInput{
				TenureMonths:       12,
				AnnualInterestRate: d("12"),
				ProcessingFee:      decimal.Zero,
				GSTRate:            decimal.Zero,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !expense.IsEMI || expense.EMI == nil {
			t.Fatal("expected an installment expense")
		}
		if !expense.Amount.Equal(d("100000")) {
			t.Errorf("expected amount to stay the principal, got %s", expense.Amount)
		}
		if got := expense.EMI.MonthlyAmount.String(); got != "8884.88" {
			t.Errorf("expected monthly amount 8884.88, got %s", got)
		}
		if got := expense.EMI.TotalAmount.String(); got != "106618.55" {
			t.Errorf("expected total amount 106618.55, got %s", got)
		}
	})

	t.Run("rejects invalid installment terms", func(t *testing.T) {
		mode := entity.NewPaymentMode("Visa", entity.PaymentModeTypeCreditCard, "", "")
		uc := NewCreateExpenseUseCase(newFakeExpenseRepo(), newFakePaymentModeRepo(mode), &fakeAggregateCache{})

		_, err := uc.Execute(ctx, CreateExpenseInput{
			Title:         "laptop",
			Amount:        d("100000"),
			Category:      "Shopping",
			Date:          testDate,
			PaymentModeID: mode.ID,
			EMI:           &EMITermsInput{TenureMonths: 0},
		})

		var emiErr *domainerror.EMIError
		if !errors.As(err, &emiErr) {
			t.Fatalf("expected an EMI error, got %v", err)
		}
		if emiErr.Code != domainerror.ErrCodeInvalidTenure {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTenure, emiErr.Code)
		}
	})

	t.Run("rejects an unknown payment mode", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(newFakeExpenseRepo(), newFakePaymentModeRepo(), &fakeAggregateCache{})

		_, err := uc.Execute(ctx, CreateExpenseInput{
			Title:         "groceries",
			Amount:        d("500"),
			Category:      "Food",
			Date:          testDate,
			PaymentModeID: uuid.New(),
		})

		if !errors.Is(err, domainerror.ErrPaymentModeNotFound) {
			t.Errorf("expected payment mode not found error, got %v", err)
		}
	})

	t.Run("validates fields", func(t *testing.T) {
		mode := entity.NewPaymentMode("Visa", entity.PaymentModeTypeCreditCard, "", "")
		uc := NewCreateExpenseUseCase(newFakeExpenseRepo(), newFakePaymentModeRepo(mode), &fakeAggregateCache{})

		tests := []struct {
			name    string
			input   CreateExpenseInput
			wantErr error
		}{
			{"empty title", CreateExpenseInput{Amount: d("10"), Category: "Food", Date: testDate, PaymentModeID: mode.ID}, domainerror.ErrExpenseTitleRequired},
			{"zero amount", CreateExpenseInput{Title: "x", Amount: decimal.Zero, Category: "Food", Date: testDate, PaymentModeID: mode.ID}, domainerror.ErrInvalidExpenseAmount},
			{"unknown category", CreateExpenseInput{Title: "x", Amount: d("10"), Category: "Junk", Date: testDate, PaymentModeID: mode.ID}, domainerror.ErrInvalidExpenseCategory},
			{"zero date", CreateExpenseInput{Title: "x", Amount: d("10"), Category: "Food", PaymentModeID: mode.ID}, domainerror.ErrInvalidExpenseDate},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.input)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
			})
		}
	})
}
