package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// Insight severity tiers, from most to least urgent.
const (
	SeverityAlert   = "alert"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Insight types identify which rule produced the message.
const (
	InsightTopCategory    = "top_category_spending"
	InsightBudgetExceeded = "budget_exceeded"
	InsightBudgetNearing  = "budget_nearing_limit"
	InsightHighAverage    = "high_average_expense"
	InsightOnTrack        = "spending_on_track"
)

// Insight is a threshold-triggered advisory message.
type Insight struct {
	Type     string           `json:"type"`
	Title    string           `json:"title"`
	Message  string           `json:"message"`
	Severity string           `json:"severity"`
	Category string           `json:"category,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
}

// GetInsightsOutput represents the output of the insight engine.
type GetInsightsOutput struct {
	Insights []Insight `json:"insights"`
}

// GetInsightsUseCase evaluates threshold rules against the aggregate reports.
type GetInsightsUseCase struct {
	snapshotRepo adapter.LedgerSnapshotRepository
	cache        adapter.AggregateCache
	now          func() time.Time
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(
	snapshotRepo adapter.LedgerSnapshotRepository,
	cache adapter.AggregateCache,
	now func() time.Time,
) *GetInsightsUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetInsightsUseCase{
		snapshotRepo: snapshotRepo,
		cache:        cache,
		now:          now,
	}
}

// Execute evaluates all insight rules over a single snapshot.
func (uc *GetInsightsUseCase) Execute(ctx context.Context) (*GetInsightsOutput, error) {
	version, cacheable := cacheVersion(ctx, uc.cache)
	if cacheable {
		var cached GetInsightsOutput
		if loadAggregate(ctx, uc.cache, version, adapter.AggregateInsights, &cached) {
			return &cached, nil
		}
	}

	snapshot, err := uc.snapshotRepo.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger snapshot: %w", err)
	}

	now := uc.now()
	output := computeInsights(
		computeOverview(snapshot, now),
		computeCategoryBreakdown(snapshot, now),
		computeBudgetUsage(snapshot),
		len(snapshot.Expenses) > 0,
	)

	if cacheable {
		storeAggregate(ctx, uc.cache, version, adapter.AggregateInsights, output)
	}
	return output, nil
}

var highAverageThreshold = decimal.NewFromInt(1000)

// computeInsights runs the rules in order, then sorts insights into severity
// tiers. Within a tier the rule-evaluation order is preserved.
func computeInsights(
	overview *OverviewOutput,
	breakdown *GetCategoryBreakdownOutput,
	usage *GetBudgetUsageOutput,
	hasExpenses bool,
) *GetInsightsOutput {
	var insights []Insight

	if len(breakdown.Categories) > 0 {
		top := breakdown.Categories[0]
		if top.Percentage > 40 {
			amount := top.Amount
			insights = append(insights, Insight{
				Type:     InsightTopCategory,
				Title:    fmt.Sprintf("High spending in %s", top.Category),
				Message:  fmt.Sprintf("%s accounts for %.2f%% of this month's spending", top.Category, top.Percentage),
				Severity: SeverityWarning,
				Category: top.Category,
				Amount:   &amount,
			})
		}
	}

	for _, entry := range usage.Budgets {
		if entry.Exceeded {
			over := entry.Spent.Sub(entry.Budget)
			insights = append(insights, Insight{
				Type:     InsightBudgetExceeded,
				Title:    fmt.Sprintf("Budget exceeded for %s", entry.Category),
				Message:  fmt.Sprintf("You have spent %s over your %s budget of %s", over.StringFixed(2), entry.Category, entry.Budget.StringFixed(2)),
				Severity: SeverityAlert,
				Category: entry.Category,
				Amount:   &over,
			})
		}
	}

	for _, entry := range usage.Budgets {
		if !entry.Exceeded && entry.Percentage > 80 && entry.Percentage <= 100 {
			spent := entry.Spent
			insights = append(insights, Insight{
				Type:     InsightBudgetNearing,
				Title:    fmt.Sprintf("Approaching budget limit for %s", entry.Category),
				Message:  fmt.Sprintf("You have used %.2f%% of your %s budget", entry.Percentage, entry.Category),
				Severity: SeverityWarning,
				Category: entry.Category,
				Amount:   &spent,
			})
		}
	}

	if overview.AverageExpense.GreaterThan(highAverageThreshold) {
		average := overview.AverageExpense
		insights = append(insights, Insight{
			Type:     InsightHighAverage,
			Title:    "High average transaction",
			Message:  fmt.Sprintf("Your average expense is %s, above the %s mark", average.StringFixed(2), highAverageThreshold.StringFixed(2)),
			Severity: SeverityInfo,
			Amount:   &average,
		})
	}

	if len(insights) == 0 && hasExpenses {
		insights = append(insights, Insight{
			Type:     InsightOnTrack,
			Title:    "Spending on track",
			Message:  "No budget or spending concerns detected. Keep it up!",
			Severity: SeverityInfo,
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return severityRank(insights[i].Severity) < severityRank(insights[j].Severity)
	})

	if insights == nil {
		insights = []Insight{}
	}
	return &GetInsightsOutput{Insights: insights}
}

func severityRank(severity string) int {
	switch severity {
	case SeverityAlert:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}
