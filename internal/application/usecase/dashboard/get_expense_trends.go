package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// TrendPoint is one day's spend within the trend window.
type TrendPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// GetExpenseTrendsOutput represents the output of the daily trends report.
type GetExpenseTrendsOutput struct {
	Trends []TrendPoint `json:"trends"`
}

// GetExpenseTrendsUseCase computes daily totals over the trailing window.
type GetExpenseTrendsUseCase struct {
	snapshotRepo adapter.LedgerSnapshotRepository
	cache        adapter.AggregateCache
	now          func() time.Time
}

// NewGetExpenseTrendsUseCase creates a new GetExpenseTrendsUseCase instance.
func NewGetExpenseTrendsUseCase(
	snapshotRepo adapter.LedgerSnapshotRepository,
	cache adapter.AggregateCache,
	now func() time.Time,
) *GetExpenseTrendsUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetExpenseTrendsUseCase{
		snapshotRepo: snapshotRepo,
		cache:        cache,
		now:          now,
	}
}

// Execute computes the trend series for the trailing thirty days.
func (uc *GetExpenseTrendsUseCase) Execute(ctx context.Context) (*GetExpenseTrendsOutput, error) {
	version, cacheable := cacheVersion(ctx, uc.cache)
	if cacheable {
		var cached GetExpenseTrendsOutput
		if loadAggregate(ctx, uc.cache, version, adapter.AggregateExpenseTrends, &cached) {
			return &cached, nil
		}
	}

	snapshot, err := uc.snapshotRepo.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger snapshot: %w", err)
	}

	output := computeExpenseTrends(snapshot, uc.now())

	if cacheable {
		storeAggregate(ctx, uc.cache, version, adapter.AggregateExpenseTrends, output)
	}
	return output, nil
}

// computeExpenseTrends is the pure aggregation over a snapshot. Days with no
// expenses are omitted from the series.
func computeExpenseTrends(snapshot *adapter.LedgerSnapshot, now time.Time) *GetExpenseTrendsOutput {
	first, last := trendBounds(now)

	amounts := make(map[string]decimal.Decimal)
	counts := make(map[string]int)

	for _, expense := range snapshot.Expenses {
		day := dayStart(expense.Date)
		if day.Before(first) || day.After(last) {
			continue
		}
		key := day.Format(DayKeyLayout)
		amounts[key] = amounts[key].Add(expense.Amount)
		counts[key]++
	}

	points := make([]TrendPoint, 0, len(amounts))
	for key, amount := range amounts {
		points = append(points, TrendPoint{
			Date:   key,
			Amount: amount,
			Count:  counts[key],
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return &GetExpenseTrendsOutput{Trends: points}
}
