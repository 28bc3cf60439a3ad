package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// BudgetUsageEntry reports spend against a single monthly budget.
type BudgetUsageEntry struct {
	BudgetID   string          `json:"budget_id"`
	Category   string          `json:"category"`
	Month      string          `json:"month"`
	Budget     decimal.Decimal `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
	Exceeded   bool            `json:"exceeded"`
}

// GetBudgetUsageOutput represents the output of the budget usage report.
type GetBudgetUsageOutput struct {
	Budgets []BudgetUsageEntry `json:"budgets"`
}

// GetBudgetUsageUseCase computes usage for every configured budget.
type GetBudgetUsageUseCase struct {
	snapshotRepo adapter.LedgerSnapshotRepository
	cache        adapter.AggregateCache
}

// NewGetBudgetUsageUseCase creates a new GetBudgetUsageUseCase instance.
func NewGetBudgetUsageUseCase(
	snapshotRepo adapter.LedgerSnapshotRepository,
	cache adapter.AggregateCache,
) *GetBudgetUsageUseCase {
	return &GetBudgetUsageUseCase{
		snapshotRepo: snapshotRepo,
		cache:        cache,
	}
}

// Execute computes usage for each budget against its own month.
func (uc *GetBudgetUsageUseCase) Execute(ctx context.Context) (*GetBudgetUsageOutput, error) {
	version, cacheable := cacheVersion(ctx, uc.cache)
	if cacheable {
		var cached GetBudgetUsageOutput
		if loadAggregate(ctx, uc.cache, version, adapter.AggregateBudgetUsage, &cached) {
			return &cached, nil
		}
	}

	snapshot, err := uc.snapshotRepo.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger snapshot: %w", err)
	}

	output := computeBudgetUsage(snapshot)

	if cacheable {
		storeAggregate(ctx, uc.cache, version, adapter.AggregateBudgetUsage, output)
	}
	return output, nil
}

// computeBudgetUsage is the pure aggregation over a snapshot.
func computeBudgetUsage(snapshot *adapter.LedgerSnapshot) *GetBudgetUsageOutput {
	spentByKey := make(map[string]decimal.Decimal)
	for _, expense := range snapshot.Expenses {
		key := budgetUsageKey(expense.Category, MonthKeyFor(expense.Date))
		spentByKey[key] = spentByKey[key].Add(expense.Amount)
	}

	entries := make([]BudgetUsageEntry, 0, len(snapshot.Budgets))
	for _, budget := range snapshot.Budgets {
		spent := spentByKey[budgetUsageKey(budget.Category, budget.Month)]

		var percentage float64
		if budget.Amount.IsPositive() {
			pct := spent.Mul(decimal.NewFromInt(100)).Div(budget.Amount)
			percentage, _ = pct.Round(2).Float64()
		}

		entries = append(entries, BudgetUsageEntry{
			BudgetID:   budget.ID.String(),
			Category:   string(budget.Category),
			Month:      budget.Month,
			Budget:     budget.Amount,
			Spent:      spent,
			Remaining:  budget.Amount.Sub(spent),
			Percentage: percentage,
			Exceeded:   spent.GreaterThan(budget.Amount),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Month != entries[j].Month {
			return entries[i].Month > entries[j].Month
		}
		return entries[i].Category < entries[j].Category
	})

	return &GetBudgetUsageOutput{Budgets: entries}
}

func budgetUsageKey(category entity.Category, month string) string {
	return string(category) + "|" + month
}
