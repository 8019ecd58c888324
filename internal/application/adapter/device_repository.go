// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// DeviceRepository defines the interface for push-device persistence operations.
type DeviceRepository interface {
	// Register stores a device, replacing any prior registration of the same
	// token for the user and refreshing its last-active timestamp.
	Register(ctx context.Context, device *entity.Device) error

	// Remove deletes the user's device registration with the given token.
	Remove(ctx context.Context, userID uuid.UUID, token string) error

	// FindByUser retrieves the user's registered devices.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// PruneInactive bulk-removes every device whose last-active timestamp is
	// older than the threshold, across all users. It returns the number of
	// distinct users that lost at least one device.
	PruneInactive(ctx context.Context, threshold time.Time) (int64, error)
}
