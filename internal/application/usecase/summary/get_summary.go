// Package summary contains the financial aggregation use cases.
package summary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// GetSummaryUseCase serves a user's persisted financial summary, reading
// through the cache when one is configured.
type GetSummaryUseCase struct {
	summaryRepo adapter.SummaryRepository
	cache       adapter.SummaryCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(summaryRepo adapter.SummaryRepository, cache adapter.SummaryCache) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		summaryRepo: summaryRepo,
		cache:       cache,
	}
}

// Execute returns the user's stored summary. Cache failures are logged and
// fall back to the repository; only repository failures surface to the caller.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.FinancialSummary, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, userID)
		if err != nil {
			slog.Warn("Summary cache read failed", "user_id", userID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	result, err := uc.summaryRepo.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, userID, result); err != nil {
			slog.Warn("Summary cache write failed", "user_id", userID, "error", err)
		}
	}

	return result, nil
}
