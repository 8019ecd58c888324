// Package cache provides a Redis-backed cache for computed financial summaries.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// DefaultTTL bounds how long a cached summary may serve reads before the
// next refresh repopulates it.
const DefaultTTL = 15 * time.Minute

// SummaryCache implements adapter.SummaryCache on Redis.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a new summary cache. A zero TTL selects DefaultTTL.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SummaryCache{
		client: client,
		ttl:    ttl,
	}
}

// key builds the cache key for a user's summary.
func key(userID uuid.UUID) string {
	return fmt.Sprintf("summary:%s", userID)
}

// Get retrieves the cached summary for the user, or nil on a miss.
func (c *SummaryCache) Get(ctx context.Context, userID uuid.UUID) (*entity.FinancialSummary, error) {
	raw, err := c.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var summary entity.FinancialSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("corrupt cached summary: %w", err)
	}
	return &summary, nil
}

// Set stores the summary for the user.
func (c *SummaryCache) Set(ctx context.Context, userID uuid.UUID, summary *entity.FinancialSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return c.client.Set(ctx, key(userID), raw, c.ttl).Err()
}

// Invalidate drops any cached summary for the user.
func (c *SummaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, key(userID)).Err()
}

// Ensure implementation satisfies the interface.
var _ adapter.SummaryCache = (*SummaryCache)(nil)
