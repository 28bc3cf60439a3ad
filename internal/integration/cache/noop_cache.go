package cache

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// noopAggregateCache never hits. It backs cacheless deployments, where every
// aggregate is recomputed per request.
type noopAggregateCache struct{}

// NewNoopAggregateCache creates an aggregate cache that always misses.
func NewNoopAggregateCache() adapter.AggregateCache {
	return noopAggregateCache{}
}

func (noopAggregateCache) Version(context.Context) (int64, error) { return 0, nil }

func (noopAggregateCache) Invalidate(context.Context) error { return nil }

func (noopAggregateCache) GetAggregate(context.Context, int64, string, any) (bool, error) {
	return false, nil
}

func (noopAggregateCache) SetAggregate(context.Context, int64, string, any) error {
	return nil
}
