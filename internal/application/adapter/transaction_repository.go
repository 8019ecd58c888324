// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create stores a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByUser retrieves every transaction owned by the user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByUserInRange retrieves the user's transactions with a date inside
	// [start, end), most recent first. A limit of 0 means no limit.
	FindByUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]*entity.Transaction, error)
}
