package settings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
)

// RemoveDeviceInput represents the input for removing a push device.
type RemoveDeviceInput struct {
	UserID uuid.UUID
	Token  string
}

// RemoveDeviceUseCase handles push device removal.
type RemoveDeviceUseCase struct {
	userRepo   adapter.UserRepository
	deviceRepo adapter.DeviceRepository
}

// NewRemoveDeviceUseCase creates a new RemoveDeviceUseCase instance.
func NewRemoveDeviceUseCase(userRepo adapter.UserRepository, deviceRepo adapter.DeviceRepository) *RemoveDeviceUseCase {
	return &RemoveDeviceUseCase{userRepo: userRepo, deviceRepo: deviceRepo}
}

// Execute removes the device record. If the removed token was the user's
// active push endpoint, the endpoint is cleared so reminders stop going to
// a dead device.
func (uc *RemoveDeviceUseCase) Execute(ctx context.Context, input RemoveDeviceInput) error {
	if err := uc.deviceRepo.Remove(ctx, input.UserID, input.Token); err != nil {
		return err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user.PushToken != input.Token {
		return nil
	}

	user.PushToken = ""
	user.UpdatedAt = time.Now().UTC()
	return uc.userRepo.Update(ctx, user)
}
