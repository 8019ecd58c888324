// Package settings contains use cases for notification preferences and
// push devices.
package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// GetSettingsUseCase handles reading a user's notification settings.
type GetSettingsUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(userRepo adapter.UserRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{userRepo: userRepo}
}

// Execute returns the notification settings for the given user.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, userID uuid.UUID) (entity.NotificationSettings, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return entity.NotificationSettings{}, err
	}
	return user.Settings, nil
}
