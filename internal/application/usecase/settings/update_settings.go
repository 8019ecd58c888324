package settings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// UpdateSettingsInput represents the input for updating notification settings.
type UpdateSettingsInput struct {
	UserID   uuid.UUID
	Settings entity.NotificationSettings
}

// UpdateSettingsUseCase handles updating a user's notification settings.
type UpdateSettingsUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(userRepo adapter.UserRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{userRepo: userRepo}
}

// Execute replaces the user's notification settings.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (entity.NotificationSettings, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return entity.NotificationSettings{}, err
	}

	user.Settings = input.Settings
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return entity.NotificationSettings{}, err
	}

	return user.Settings, nil
}
