// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// SummaryRepository defines the interface for persisting financial summaries.
type SummaryRepository interface {
	// Save overwrites the user's financial summary with the given snapshot.
	Save(ctx context.Context, userID uuid.UUID, summary *entity.FinancialSummary) error

	// Find retrieves the user's persisted summary, or ErrUserNotFound if no
	// summary has ever been computed for them.
	Find(ctx context.Context, userID uuid.UUID) (*entity.FinancialSummary, error)
}
