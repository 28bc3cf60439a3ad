package emi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

type fakeExpenseRepo struct {
	expenses       []*entity.Expense
	lastPagination adapter.ExpensePagination
}

func (f *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	f.expenses = append(f.expenses, expense)
	return nil
}

func (f *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, expense := range f.expenses {
		if expense.ID == id {
			return expense, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByFilter(_ context.Context, filter adapter.ExpenseFilter, pagination adapter.ExpensePagination) (*adapter.ExpenseListResult, error) {
	f.lastPagination = pagination
	var matched []*entity.Expense
	for _, expense := range f.expenses {
		if filter.OnlyEMI && !expense.IsEMI {
			continue
		}
		matched = append(matched, expense)
	}
	return &adapter.ExpenseListResult{
		Expenses:   matched,
		Total:      int64(len(matched)),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}, nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, _ *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

type fakePaymentModeRepo struct {
	modes map[uuid.UUID]*entity.PaymentMode
}

func (f *fakePaymentModeRepo) Create(_ context.Context, mode *entity.PaymentMode) error {
	f.modes[mode.ID] = mode
	return nil
}

func (f *fakePaymentModeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentMode, error) {
	mode, ok := f.modes[id]
	if !ok {
		return nil, domainerror.ErrPaymentModeNotFound
	}
	return mode, nil
}

func (f *fakePaymentModeRepo) FindByName(_ context.Context, _ string) (*entity.PaymentMode, error) {
	return nil, domainerror.ErrPaymentModeNotFound
}

func (f *fakePaymentModeRepo) FindAll(_ context.Context) ([]*entity.PaymentMode, error) {
	return nil, nil
}

func (f *fakePaymentModeRepo) Update(_ context.Context, _ *entity.PaymentMode) error { return nil }
func (f *fakePaymentModeRepo) Delete(_ context.Context, _ uuid.UUID) error           { return nil }
func (f *fakePaymentModeRepo) CountExpenses(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func financedExpense(title string, modeID uuid.UUID) *entity.Expense {
	return &entity.Expense{
		ID:            uuid.New(),
		Title:         title,
		Amount:        d("100000"),
		Category:      entity.CategoryShopping,
		Date:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PaymentModeID: modeID,
		IsEMI:         true,
		EMI: &entity.EMITerms{
			TenureMonths:       12,
			AnnualInterestRate: d("12"),
			MonthlyAmount:      d("8884.88"),
			TotalAmount:        d("106618.55"),
			TotalInterest:      d("6618.55"),
		},
	}
}

func TestCalculateEMIUseCase_Execute(t *testing.T) {
	uc := NewCalculateEMIUseCase()

	t.Run("computes schedule and echoes terms", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CalculateEMIInput{
			Principal:          d("100000"),
			TenureMonths:       12,
			AnnualInterestRate: d("12"),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !output.MonthlyAmount.Equal(d("8884.88")) {
			t.Errorf("MonthlyAmount = %s, want 8884.88", output.MonthlyAmount)
		}
		if !output.TotalAmount.Equal(d("106618.55")) {
			t.Errorf("TotalAmount = %s, want 106618.55", output.TotalAmount)
		}
		if output.TenureMonths != 12 || !output.Principal.Equal(d("100000")) {
			t.Errorf("input terms not echoed: %+v", output)
		}
	})

	t.Run("maps invalid tenure to a coded error", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CalculateEMIInput{
			Principal:          d("100000"),
			TenureMonths:       0,
			AnnualInterestRate: d("12"),
		})
		var emiErr *domainerror.EMIError
		if !errors.As(err, &emiErr) {
			t.Fatalf("Execute() error = %v, want EMIError", err)
		}
		if emiErr.Code != domainerror.ErrCodeInvalidTenure {
			t.Errorf("Code = %s, want %s", emiErr.Code, domainerror.ErrCodeInvalidTenure)
		}
		if !errors.Is(err, domainerror.ErrInvalidTenure) {
			t.Errorf("error does not wrap ErrInvalidTenure")
		}
	})

	t.Run("maps negative fee to a coded error", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CalculateEMIInput{
			Principal:          d("100000"),
			TenureMonths:       12,
			AnnualInterestRate: d("12"),
			ProcessingFee:      d("-1"),
		})
		var emiErr *domainerror.EMIError
		if !errors.As(err, &emiErr) {
			t.Fatalf("Execute() error = %v, want EMIError", err)
		}
		if emiErr.Code != domainerror.ErrCodeInvalidProcessingFee {
			t.Errorf("Code = %s, want %s", emiErr.Code, domainerror.ErrCodeInvalidProcessingFee)
		}
	})
}

func TestListEMIsUseCase_Execute(t *testing.T) {
	t.Run("reports payment progress per installment expense", func(t *testing.T) {
		mode := entity.NewPaymentMode("Visa", entity.PaymentModeTypeCreditCard, "", "")
		modeRepo := &fakePaymentModeRepo{modes: map[uuid.UUID]*entity.PaymentMode{mode.ID: mode}}

		expense := financedExpense("Laptop", mode.ID)
		expense.PaidAmount = d("8884.88")
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{expense}}

		uc := NewListEMIsUseCase(expenseRepo, modeRepo)
		output, err := uc.Execute(context.Background(), ListEMIsInput{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(output.EMIs) != 1 {
			t.Fatalf("len(EMIs) = %d, want 1", len(output.EMIs))
		}

		detail := output.EMIs[0]
		if detail.PaymentMode != "Visa" {
			t.Errorf("PaymentMode = %q, want Visa", detail.PaymentMode)
		}
		if !detail.TotalPaid.Equal(d("8884.88")) {
			t.Errorf("TotalPaid = %s, want 8884.88", detail.TotalPaid)
		}
		if !detail.RemainingAmount.Equal(d("97733.67")) {
			t.Errorf("RemainingAmount = %s, want 97733.67", detail.RemainingAmount)
		}
		if detail.RemainingInstallments != 11 {
			t.Errorf("RemainingInstallments = %d, want 11", detail.RemainingInstallments)
		}
	})

	t.Run("excludes plain expenses", func(t *testing.T) {
		mode := entity.NewPaymentMode("Visa", entity.PaymentModeTypeCreditCard, "", "")
		modeRepo := &fakePaymentModeRepo{modes: map[uuid.UUID]*entity.PaymentMode{mode.ID: mode}}

		plain := &entity.Expense{
			ID:            uuid.New(),
			Title:         "Groceries",
			Amount:        d("500"),
			Category:      entity.CategoryFood,
			Date:          time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			PaymentModeID: mode.ID,
		}
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{plain, financedExpense("Laptop", mode.ID)}}

		uc := NewListEMIsUseCase(expenseRepo, modeRepo)
		output, err := uc.Execute(context.Background(), ListEMIsInput{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(output.EMIs) != 1 {
			t.Fatalf("len(EMIs) = %d, want 1", len(output.EMIs))
		}
		if output.EMIs[0].Title != "Laptop" {
			t.Errorf("Title = %q, want Laptop", output.EMIs[0].Title)
		}
	})

	t.Run("normalizes page and limit before querying", func(t *testing.T) {
		mode := entity.NewPaymentMode("Visa", entity.PaymentModeTypeCreditCard, "", "")
		modeRepo := &fakePaymentModeRepo{modes: map[uuid.UUID]*entity.PaymentMode{mode.ID: mode}}
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{financedExpense("Laptop", mode.ID)}}

		uc := NewListEMIsUseCase(expenseRepo, modeRepo)

		if _, err := uc.Execute(context.Background(), ListEMIsInput{Page: 0, Limit: 0}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if expenseRepo.lastPagination.Page != 1 {
			t.Errorf("Page = %d, want 1", expenseRepo.lastPagination.Page)
		}
		if expenseRepo.lastPagination.Limit != 50 {
			t.Errorf("Limit = %d, want 50", expenseRepo.lastPagination.Limit)
		}

		if _, err := uc.Execute(context.Background(), ListEMIsInput{Page: -2, Limit: 1000}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if expenseRepo.lastPagination.Page != 1 {
			t.Errorf("Page = %d, want 1", expenseRepo.lastPagination.Page)
		}
		if expenseRepo.lastPagination.Limit != 100 {
			t.Errorf("Limit = %d, want 100", expenseRepo.lastPagination.Limit)
		}
	})

	t.Run("resolves each payment mode once", func(t *testing.T) {
		mode := entity.NewPaymentMode("Visa", entity.PaymentModeTypeCreditCard, "", "")
		modeRepo := &fakePaymentModeRepo{modes: map[uuid.UUID]*entity.PaymentMode{mode.ID: mode}}

		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			financedExpense("Laptop", mode.ID),
			financedExpense("Phone", mode.ID),
		}}

		uc := NewListEMIsUseCase(expenseRepo, modeRepo)
		output, err := uc.Execute(context.Background(), ListEMIsInput{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(output.EMIs) != 2 {
			t.Fatalf("len(EMIs) = %d, want 2", len(output.EMIs))
		}
		for _, detail := range output.EMIs {
			if detail.PaymentMode != "Visa" {
				t.Errorf("PaymentMode = %q, want Visa", detail.PaymentMode)
			}
		}
	})
}
