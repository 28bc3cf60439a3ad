package adapter

import "context"

// Aggregate kinds used as cache keys by the dashboard use cases.
const (
	AggregateOverview          = "overview"
	AggregateCategoryBreakdown = "category_breakdown"
	AggregateBudgetUsage       = "budget_usage"
	AggregateExpenseTrends     = "expense_trends"
	AggregateInsights          = "insights"
)

// AggregateCache memoizes derived aggregates keyed by ledger version and
// aggregate kind. Every ledger mutation bumps the version, so an entry
// computed from a superseded snapshot can never be served again.
//
// Implementations must be safe for concurrent use. A cache miss is not an
// error; callers recompute and store. The zero-cache deployment uses a no-op
// implementation that always misses.
type AggregateCache interface {
	// Version returns the current ledger version.
	Version(ctx context.Context) (int64, error)

	// Invalidate bumps the ledger version, retiring all cached aggregates.
	Invalidate(ctx context.Context) error

	// GetAggregate loads the aggregate of the given kind computed at the given
	// version into dest. It returns false on a miss.
	GetAggregate(ctx context.Context, version int64, kind string, dest any) (bool, error)

	// SetAggregate stores the aggregate of the given kind computed at the
	// given version.
	SetAggregate(ctx context.Context, version int64, kind string, value any) error
}
