// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	"github.com/pennyflow/backend/internal/integration/persistence/model"
)

// deviceRepository implements the adapter.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new device repository instance.
func NewDeviceRepository(db *gorm.DB) adapter.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Register stores a device, replacing any prior registration of the same
// token for the user and refreshing its last-active timestamp.
func (r *deviceRepository) Register(ctx context.Context, device *entity.Device) error {
	deviceModel := model.DeviceFromEntity(device)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "last_active"}),
		}).
		Create(deviceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Remove deletes the user's device registration with the given token.
func (r *deviceRepository) Remove(ctx context.Context, userID uuid.UUID, token string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&model.DeviceModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves the user's registered devices.
func (r *deviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []model.DeviceModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_active DESC").
		Find(&deviceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for i := range deviceModels {
		devices = append(devices, deviceModels[i].ToEntity())
	}
	return devices, nil
}

// PruneInactive bulk-removes every device whose last-active timestamp is
// older than the threshold and returns the number of distinct users that
// lost at least one device.
func (r *deviceRepository) PruneInactive(ctx context.Context, threshold time.Time) (int64, error) {
	var userIDs []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("last_active < ?", threshold).
		Distinct("user_id").
		Pluck("user_id", &userIDs)
	if result.Error != nil {
		return 0, result.Error
	}

	result = r.db.WithContext(ctx).
		Where("last_active < ?", threshold).
		Delete(&model.DeviceModel{})
	if result.Error != nil {
		return 0, result.Error
	}

	return int64(len(userIDs)), nil
}
