// Package cache implements the aggregate cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

const ledgerVersionKey = "agg:ledger_version"

// redisAggregateCache implements adapter.AggregateCache on Redis. Aggregates
// are stored under a key derived from the ledger version, so bumping the
// version on every mutation retires all cached entries at once; superseded
// keys simply expire.
type redisAggregateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAggregateCache creates a new Redis-backed aggregate cache.
func NewRedisAggregateCache(client *redis.Client, ttl time.Duration) adapter.AggregateCache {
	return &redisAggregateCache{
		client: client,
		ttl:    ttl,
	}
}

// Version returns the current ledger version. A ledger that was never
// mutated is at version zero.
func (c *redisAggregateCache) Version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, ledgerVersionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read ledger version: %w", err)
	}
	return version, nil
}

// Invalidate bumps the ledger version, retiring all cached aggregates.
func (c *redisAggregateCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, ledgerVersionKey).Err(); err != nil {
		return fmt.Errorf("failed to bump ledger version: %w", err)
	}
	return nil
}

// GetAggregate loads the aggregate of the given kind at the given version.
func (c *redisAggregateCache) GetAggregate(ctx context.Context, version int64, kind string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, aggregateKey(version, kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cached aggregate: %w", err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached aggregate: %w", err)
	}
	return true, nil
}

// SetAggregate stores the aggregate of the given kind at the given version.
func (c *redisAggregateCache) SetAggregate(ctx context.Context, version int64, kind string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode aggregate: %w", err)
	}
	if err := c.client.Set(ctx, aggregateKey(version, kind), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store aggregate: %w", err)
	}
	return nil
}

func aggregateKey(version int64, kind string) string {
	return fmt.Sprintf("agg:v%d:%s", version, kind)
}
