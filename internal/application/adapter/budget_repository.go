// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create stores a new budget entry.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByUser retrieves every budget entry owned by the user, including
	// duplicate rows for the same category.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)
}
