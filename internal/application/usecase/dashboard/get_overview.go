package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// OverviewOutput represents the dashboard overview aggregate.
//
// Installment expenses contribute their principal amount, never the financed
// total; financing cost is surfaced by the EMI views instead.
type OverviewOutput struct {
	TotalExpenses          decimal.Decimal `json:"total_expenses"`
	TotalExpensesThisMonth decimal.Decimal `json:"total_expenses_this_month"`
	TopCategory            string          `json:"top_category"`
	TopCategoryAmount      decimal.Decimal `json:"top_category_amount"`
	MostUsedPaymentMode    string          `json:"most_used_payment_mode"`
	ExpensesCount          int             `json:"expenses_count"`
	AverageExpense         decimal.Decimal `json:"average_expense"`
}

// GetOverviewUseCase computes the dashboard overview from a ledger snapshot.
type GetOverviewUseCase struct {
	snapshotRepo adapter.LedgerSnapshotRepository
	cache        adapter.AggregateCache
	now          func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	snapshotRepo adapter.LedgerSnapshotRepository,
	cache adapter.AggregateCache,
	now func() time.Time,
) *GetOverviewUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetOverviewUseCase{
		snapshotRepo: snapshotRepo,
		cache:        cache,
		now:          now,
	}
}

// Execute computes the overview aggregate.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*OverviewOutput, error) {
	version, cacheable := cacheVersion(ctx, uc.cache)
	if cacheable {
		var cached OverviewOutput
		if loadAggregate(ctx, uc.cache, version, adapter.AggregateOverview, &cached) {
			return &cached, nil
		}
	}

	snapshot, err := uc.snapshotRepo.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger snapshot: %w", err)
	}

	output := computeOverview(snapshot, uc.now())

	if cacheable {
		storeAggregate(ctx, uc.cache, version, adapter.AggregateOverview, output)
	}
	return output, nil
}

// computeOverview is the pure aggregation over a snapshot.
func computeOverview(snapshot *adapter.LedgerSnapshot, now time.Time) *OverviewOutput {
	output := &OverviewOutput{
		TotalExpenses:          decimal.Zero,
		TotalExpensesThisMonth: decimal.Zero,
		TopCategoryAmount:      decimal.Zero,
		AverageExpense:         decimal.Zero,
	}

	if len(snapshot.Expenses) == 0 {
		return output
	}

	categoryTotals := make(map[entity.Category]decimal.Decimal)
	modeCounts := make(map[string]int)

	for _, expense := range snapshot.Expenses {
		output.TotalExpenses = output.TotalExpenses.Add(expense.Amount)

		if !inMonth(expense.Date, now) {
			continue
		}
		output.TotalExpensesThisMonth = output.TotalExpensesThisMonth.Add(expense.Amount)
		categoryTotals[expense.Category] = categoryTotals[expense.Category].Add(expense.Amount)
		modeCounts[expense.PaymentModeID.String()]++
	}

	output.ExpensesCount = len(snapshot.Expenses)
	output.AverageExpense = output.TotalExpenses.
		Div(decimal.NewFromInt(int64(output.ExpensesCount))).
		Round(2)

	output.TopCategory, output.TopCategoryAmount = topCategory(categoryTotals)
	output.MostUsedPaymentMode = mostUsedPaymentMode(modeCounts, snapshot)

	return output
}

// topCategory picks the category with the highest this-month total. Ties
// break toward the lexicographically smallest category name.
func topCategory(totals map[entity.Category]decimal.Decimal) (string, decimal.Decimal) {
	var best entity.Category
	bestAmount := decimal.Zero

	for category, amount := range totals {
		switch {
		case amount.GreaterThan(bestAmount):
			best, bestAmount = category, amount
		case amount.Equal(bestAmount) && best != "" && category < best:
			best = category
		}
	}
	return string(best), bestAmount
}

// mostUsedPaymentMode picks the payment mode with the highest this-month
// expense count. Ties break toward the smallest mode id.
func mostUsedPaymentMode(counts map[string]int, snapshot *adapter.LedgerSnapshot) string {
	var bestID string
	bestCount := 0

	for id, count := range counts {
		if count > bestCount || (count == bestCount && bestID != "" && id < bestID) {
			bestID, bestCount = id, count
		}
	}
	if bestID == "" {
		return ""
	}
	if mode, ok := snapshot.PaymentModeByID()[bestID]; ok {
		return mode.Name
	}
	return ""
}
