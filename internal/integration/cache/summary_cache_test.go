// Package cache provides a Redis-backed cache for computed financial summaries.
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

func newTestCache(t *testing.T, ttl time.Duration) (*SummaryCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSummaryCache(client, ttl), server
}

func sampleSummary() *entity.FinancialSummary {
	pct := 9.2
	return &entity.FinancialSummary{
		NetWorth: decimal.RequireFromString("1334.01"),
		MonthlyTrends: map[string]entity.MonthlyTrend{
			"2024-05": {
				Income:  decimal.RequireFromString("1500"),
				Expense: decimal.RequireFromString("165.99"),
				Savings: decimal.RequireFromString("1334.01"),
			},
		},
		BudgetInsights: []entity.BudgetInsight{{
			Category:   "Groceries",
			Limit:      decimal.RequireFromString("500"),
			Spent:      decimal.RequireFromString("45.99"),
			Remaining:  decimal.RequireFromString("454.01"),
			Percentage: &pct,
			Status:     entity.InsightStatusUnder,
		}},
		LastUpdated: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestSummaryCache(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("round trips a summary", func(t *testing.T) {
		cache, _ := newTestCache(t, time.Minute)

		if err := cache.Set(ctx, userID, sampleSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("expected a cached summary")
		}
		if !got.NetWorth.Equal(decimal.RequireFromString("1334.01")) {
			t.Errorf("expected net worth 1334.01, got %s", got.NetWorth)
		}
		trend := got.MonthlyTrends["2024-05"]
		if !trend.Savings.Equal(decimal.RequireFromString("1334.01")) {
			t.Errorf("expected savings 1334.01, got %s", trend.Savings)
		}
		if len(got.BudgetInsights) != 1 || got.BudgetInsights[0].Percentage == nil || *got.BudgetInsights[0].Percentage != 9.2 {
			t.Errorf("insight did not survive the round trip: %+v", got.BudgetInsights)
		}
	})

	t.Run("miss yields nil without error", func(t *testing.T) {
		cache, _ := newTestCache(t, time.Minute)

		got, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected a miss, got %+v", got)
		}
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		cache, _ := newTestCache(t, time.Minute)

		if err := cache.Set(ctx, userID, sampleSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.Invalidate(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := cache.Get(ctx, userID)
		if err != nil || got != nil {
			t.Errorf("expected a miss after invalidation, got %+v, %v", got, err)
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		cache, server := newTestCache(t, time.Minute)

		if err := cache.Set(ctx, userID, sampleSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		server.FastForward(2 * time.Minute)

		got, err := cache.Get(ctx, userID)
		if err != nil || got != nil {
			t.Errorf("expected the entry to expire, got %+v, %v", got, err)
		}
	})
}
