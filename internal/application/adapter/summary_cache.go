// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// SummaryCache defines the interface for caching computed financial summaries.
// A cache miss is reported as (nil, nil); cache failures never fail the caller.
type SummaryCache interface {
	// Get retrieves the cached summary for the user, or nil on a miss.
	Get(ctx context.Context, userID uuid.UUID) (*entity.FinancialSummary, error)

	// Set stores the summary for the user.
	Set(ctx context.Context, userID uuid.UUID, summary *entity.FinancialSummary) error

	// Invalidate drops any cached summary for the user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
