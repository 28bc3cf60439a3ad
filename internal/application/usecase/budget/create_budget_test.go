package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.Budget
}

func newFakeBudgetRepo(budgets ...*entity.Budget) *fakeBudgetRepo {
	repo := &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
	for _, budget := range budgets {
		repo.budgets[budget.ID] = budget
	}
	return repo
}

func (r *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	budget, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	return budget, nil
}

func (r *fakeBudgetRepo) FindByCategoryAndMonth(_ context.Context, category entity.Category, month string) (*entity.Budget, error) {
	for _, budget := range r.budgets {
		if budget.Category == category && budget.Month == month {
			return budget, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (r *fakeBudgetRepo) FindAll(_ context.Context) ([]*entity.Budget, error) {
	all := make([]*entity.Budget, 0, len(r.budgets))
	for _, budget := range r.budgets {
		all = append(all, budget)
	}
	return all, nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.budgets, id)
	return nil
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

func TestCreateBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a budget and invalidates the cache", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		cache := &fakeAggregateCache{}
		uc := NewCreateBudgetUseCase(repo, cache)

		budget, err := uc.Execute(ctx, CreateBudgetInput{
			Category: "Food",
			Amount:   d("500"),
			Month:    "2024-03",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if budget.Category != entity.CategoryFood || budget.Month != "2024-03" {
			t.Errorf("unexpected budget: %s %s", budget.Category, budget.Month)
		}
		if len(repo.budgets) != 1 {
			t.Errorf("expected 1 persisted budget, got %d", len(repo.budgets))
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("rejects a duplicate category and month", func(t *testing.T) {
		existing := entity.NewBudget(entity.CategoryFood, d("500"), "2024-03")
		repo := newFakeBudgetRepo(existing)
		uc := NewCreateBudgetUseCase(repo, &fakeAggregateCache{})

		_, err := uc.Execute(ctx, CreateBudgetInput{
			Category: "Food",
			Amount:   d("800"),
			Month:    "2024-03",
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) {
			t.Fatalf("expected a budget error, got %v", err)
		}
		if budgetErr.Code != domainerror.ErrCodeBudgetAlreadyExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeBudgetAlreadyExists, budgetErr.Code)
		}
		if len(repo.budgets) != 1 {
			t.Errorf("expected no new budget, got %d", len(repo.budgets))
		}
	})

	t.Run("allows the same category in another month", func(t *testing.T) {
		existing := entity.NewBudget(entity.CategoryFood, d("500"), "2024-03")
		repo := newFakeBudgetRepo(existing)
		uc := NewCreateBudgetUseCase(repo, &fakeAggregateCache{})

		if _, err := uc.Execute(ctx, CreateBudgetInput{
			Category: "Food",
			Amount:   d("500"),
			Month:    "2024-04",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("validates fields", func(t *testing.T) {
		tests := []struct {
			name    string
			input   CreateBudgetInput
			wantErr error
		}{
			{"unknown category", CreateBudgetInput{Category: "Junk", Amount: d("500"), Month: "2024-03"}, domainerror.ErrInvalidBudgetCategory},
			{"zero amount", CreateBudgetInput{Category: "Food", Amount: decimal.Zero, Month: "2024-03"}, domainerror.ErrInvalidBudgetAmount},
			{"negative amount", CreateBudgetInput{Category: "Food", Amount: d("-1"), Month: "2024-03"}, domainerror.ErrInvalidBudgetAmount},
			{"malformed month", CreateBudgetInput{Category: "Food", Amount: d("500"), Month: "March 2024"}, domainerror.ErrInvalidBudgetMonth},
		}

		uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), &fakeAggregateCache{})
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
