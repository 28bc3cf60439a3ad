package dashboard

import (
	"context"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// cacheVersion resolves the current ledger version. A nil cache or a version
// lookup failure disables memoization for this request; the aggregate is
// recomputed, which is always correct.
func cacheVersion(ctx context.Context, cache adapter.AggregateCache) (int64, bool) {
	if cache == nil {
		return 0, false
	}
	version, err := cache.Version(ctx)
	if err != nil {
		slog.Warn("Failed to read ledger version, recomputing aggregate", "error", err)
		return 0, false
	}
	return version, true
}

// loadAggregate attempts a cache hit for the given kind at the given version.
func loadAggregate(ctx context.Context, cache adapter.AggregateCache, version int64, kind string, dest any) bool {
	hit, err := cache.GetAggregate(ctx, version, kind, dest)
	if err != nil {
		slog.Warn("Failed to read cached aggregate", "kind", kind, "error", err)
		return false
	}
	return hit
}

// storeAggregate stores a freshly computed aggregate. Failures are logged,
// never propagated: serving the computed value matters more than caching it.
func storeAggregate(ctx context.Context, cache adapter.AggregateCache, version int64, kind string, value any) {
	if err := cache.SetAggregate(ctx, version, kind, value); err != nil {
		slog.Warn("Failed to store aggregate", "kind", kind, "error", err)
	}
}
