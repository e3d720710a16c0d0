package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/business/simulation"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
)

// ResultCache keeps recent comparison summaries so a dashboard polling the
// same parameters does not re-run the simulation.
type ResultCache struct {
	client *redis.Client
}

var _ simulation.ComparisonCache = (*ResultCache)(nil)

func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{client: client}
}

func (c *ResultCache) GetComparison(ctx context.Context, key string) (map[string]domain.MetricsSummary, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read comparison from Redis: %w", err)
	}

	var summaries map[string]domain.MetricsSummary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached comparison: %w", err)
	}

	return summaries, true, nil
}

func (c *ResultCache) SetComparison(ctx context.Context, key string, summaries map[string]domain.MetricsSummary, ttl time.Duration) error {
	raw, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("failed to marshal comparison: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store comparison in Redis: %w", err)
	}

	return nil
}

func cacheKey(key string) string {
	return fmt.Sprintf("simulation:%s", key)
}
