package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryBreakdownEntry represents one category's share of this month's spend.
type CategoryBreakdownEntry struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	Count      int             `json:"count"`
}

// GetCategoryBreakdownOutput represents the output of the category breakdown.
type GetCategoryBreakdownOutput struct {
	Categories []CategoryBreakdownEntry `json:"categories"`
}

// GetCategoryBreakdownUseCase groups this month's expenses by category.
type GetCategoryBreakdownUseCase struct {
	snapshotRepo adapter.LedgerSnapshotRepository
	cache        adapter.AggregateCache
	now          func() time.Time
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(
	snapshotRepo adapter.LedgerSnapshotRepository,
	cache adapter.AggregateCache,
	now func() time.Time,
) *GetCategoryBreakdownUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetCategoryBreakdownUseCase{
		snapshotRepo: snapshotRepo,
		cache:        cache,
		now:          now,
	}
}

// Execute computes the category breakdown, sorted descending by amount.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context) (*GetCategoryBreakdownOutput, error) {
	version, cacheable := cacheVersion(ctx, uc.cache)
	if cacheable {
		var cached GetCategoryBreakdownOutput
		if loadAggregate(ctx, uc.cache, version, adapter.AggregateCategoryBreakdown, &cached) {
			return &cached, nil
		}
	}

	snapshot, err := uc.snapshotRepo.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger snapshot: %w", err)
	}

	output := computeCategoryBreakdown(snapshot, uc.now())

	if cacheable {
		storeAggregate(ctx, uc.cache, version, adapter.AggregateCategoryBreakdown, output)
	}
	return output, nil
}

// computeCategoryBreakdown is the pure aggregation over a snapshot.
func computeCategoryBreakdown(snapshot *adapter.LedgerSnapshot, now time.Time) *GetCategoryBreakdownOutput {
	amounts := make(map[entity.Category]decimal.Decimal)
	counts := make(map[entity.Category]int)
	total := decimal.Zero

	for _, expense := range snapshot.Expenses {
		if !inMonth(expense.Date, now) {
			continue
		}
		amounts[expense.Category] = amounts[expense.Category].Add(expense.Amount)
		counts[expense.Category]++
		total = total.Add(expense.Amount)
	}

	entries := make([]CategoryBreakdownEntry, 0, len(amounts))
	for category, amount := range amounts {
		var percentage float64
		if !total.IsZero() {
			pct := amount.Mul(decimal.NewFromInt(100)).Div(total)
			percentage, _ = pct.Round(2).Float64()
		}
		entries = append(entries, CategoryBreakdownEntry{
			Category:   string(category),
			Amount:     amount,
			Percentage: percentage,
			Count:      counts[category],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Amount.Equal(entries[j].Amount) {
			return entries[i].Amount.GreaterThan(entries[j].Amount)
		}
		return entries[i].Category < entries[j].Category
	})

	return &GetCategoryBreakdownOutput{Categories: entries}
}
