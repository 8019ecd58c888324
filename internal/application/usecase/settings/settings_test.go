// Package settings contains use cases for notification preferences and devices.
package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

type fakeUserRepository struct {
	users   map[uuid.UUID]*entity.User
	updated int
}

func newFakeUserRepository(users ...*entity.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	r.updated++
	return nil
}

func (r *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type fakeDeviceRepository struct {
	registered []*entity.Device
	removed    []string
	removeErr  error
}

func (r *fakeDeviceRepository) Register(ctx context.Context, device *entity.Device) error {
	r.registered = append(r.registered, device)
	return nil
}

func (r *fakeDeviceRepository) Remove(ctx context.Context, userID uuid.UUID, token string) error {
	if r.removeErr != nil {
		return r.removeErr
	}
	r.removed = append(r.removed, token)
	return nil
}

func (r *fakeDeviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	return r.registered, nil
}

func (r *fakeDeviceRepository) PruneInactive(ctx context.Context, threshold time.Time) (int64, error) {
	return 0, nil
}

func TestGetSettingsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user's settings", func(t *testing.T) {
		user := entity.NewUser("casey@example.com", "Casey", "hash")
		user.Settings.WeeklyDigest = false
		uc := NewGetSettingsUseCase(newFakeUserRepository(user))

		settings, err := uc.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !settings.BillReminders || settings.WeeklyDigest || !settings.MonthlyReport {
			t.Errorf("unexpected settings: %+v", settings)
		}
	})

	t.Run("reports an unknown user", func(t *testing.T) {
		uc := NewGetSettingsUseCase(newFakeUserRepository())

		_, err := uc.Execute(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Fatalf("expected user not found, got %v", err)
		}
	})
}

func TestUpdateSettingsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the stored settings", func(t *testing.T) {
		user := entity.NewUser("casey@example.com", "Casey", "hash")
		repo := newFakeUserRepository(user)
		uc := NewUpdateSettingsUseCase(repo)

		updated, err := uc.Execute(ctx, UpdateSettingsInput{
			UserID: user.ID,
			Settings: entity.NotificationSettings{
				BillReminders: true,
				WeeklyDigest:  false,
				MonthlyReport: false,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.MonthlyReport {
			t.Error("expected monthly report to be disabled")
		}
		if repo.users[user.ID].Settings.WeeklyDigest {
			t.Error("expected weekly digest to be disabled in the store")
		}
	})
}

func TestRegisterDeviceUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("registers the device and promotes its token", func(t *testing.T) {
		user := entity.NewUser("casey@example.com", "Casey", "hash")
		userRepo := newFakeUserRepository(user)
		deviceRepo := &fakeDeviceRepository{}
		uc := NewRegisterDeviceUseCase(userRepo, deviceRepo)

		device, err := uc.Execute(ctx, RegisterDeviceInput{
			UserID: user.ID,
			Token:  "token-a",
			Name:   "Casey's phone",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if device.Token != "token-a" {
			t.Errorf("expected token-a, got %s", device.Token)
		}
		if len(deviceRepo.registered) != 1 {
			t.Fatalf("expected 1 registered device, got %d", len(deviceRepo.registered))
		}
		if userRepo.users[user.ID].PushToken != "token-a" {
			t.Errorf("expected push token token-a, got %q", userRepo.users[user.ID].PushToken)
		}
	})

	t.Run("rejects an unknown user before touching the device store", func(t *testing.T) {
		deviceRepo := &fakeDeviceRepository{}
		uc := NewRegisterDeviceUseCase(newFakeUserRepository(), deviceRepo)

		_, err := uc.Execute(ctx, RegisterDeviceInput{UserID: uuid.New(), Token: "token-a"})
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Fatalf("expected user not found, got %v", err)
		}
		if len(deviceRepo.registered) != 0 {
			t.Errorf("expected no registered devices, got %d", len(deviceRepo.registered))
		}
	})
}

func TestRemoveDeviceUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the push token when the active device is removed", func(t *testing.T) {
		user := entity.NewUser("casey@example.com", "Casey", "hash")
		user.PushToken = "token-a"
		userRepo := newFakeUserRepository(user)
		uc := NewRemoveDeviceUseCase(userRepo, &fakeDeviceRepository{})

		if err := uc.Execute(ctx, RemoveDeviceInput{UserID: user.ID, Token: "token-a"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userRepo.users[user.ID].PushToken != "" {
			t.Errorf("expected push token cleared, got %q", userRepo.users[user.ID].PushToken)
		}
	})

	t.Run("keeps the push token when another device is removed", func(t *testing.T) {
		user := entity.NewUser("casey@example.com", "Casey", "hash")
		user.PushToken = "token-a"
		userRepo := newFakeUserRepository(user)
		uc := NewRemoveDeviceUseCase(userRepo, &fakeDeviceRepository{})

		if err := uc.Execute(ctx, RemoveDeviceInput{UserID: user.ID, Token: "token-b"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userRepo.users[user.ID].PushToken != "token-a" {
			t.Errorf("expected push token kept, got %q", userRepo.users[user.ID].PushToken)
		}
	})

	t.Run("propagates device store failure", func(t *testing.T) {
		user := entity.NewUser("casey@example.com", "Casey", "hash")
		uc := NewRemoveDeviceUseCase(newFakeUserRepository(user), &fakeDeviceRepository{removeErr: errors.New("db down")})

		if err := uc.Execute(ctx, RemoveDeviceInput{UserID: user.ID, Token: "token-a"}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
