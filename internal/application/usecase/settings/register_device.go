package settings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// RegisterDeviceInput represents the input for registering a push device.
type RegisterDeviceInput struct {
	UserID uuid.UUID
	Token  string
	Name   string
}

// RegisterDeviceUseCase handles push device registration.
type RegisterDeviceUseCase struct {
	userRepo   adapter.UserRepository
	deviceRepo adapter.DeviceRepository
}

// NewRegisterDeviceUseCase creates a new RegisterDeviceUseCase instance.
func NewRegisterDeviceUseCase(userRepo adapter.UserRepository, deviceRepo adapter.DeviceRepository) *RegisterDeviceUseCase {
	return &RegisterDeviceUseCase{userRepo: userRepo, deviceRepo: deviceRepo}
}

// Execute upserts the device record and promotes its token to the user's
// active push endpoint.
func (uc *RegisterDeviceUseCase) Execute(ctx context.Context, input RegisterDeviceInput) (*entity.Device, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	device := entity.NewDevice(input.UserID, input.Token, input.Name)
	if err := uc.deviceRepo.Register(ctx, device); err != nil {
		return nil, err
	}

	user.PushToken = input.Token
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return device, nil
}
