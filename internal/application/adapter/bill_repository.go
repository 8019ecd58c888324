// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// BillRepository defines the interface for bill persistence operations.
type BillRepository interface {
	// Create stores a new bill.
	Create(ctx context.Context, bill *entity.Bill) error

	// FindByUser retrieves every bill owned by the user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error)

	// FindDueForReminder retrieves unpaid bills due on or before the given
	// time whose reminder has not been sent, joined with their owners.
	FindDueForReminder(ctx context.Context, dueBefore time.Time) ([]*entity.BillWithOwner, error)

	// Update persists changes to an existing bill.
	Update(ctx context.Context, bill *entity.Bill) error
}
