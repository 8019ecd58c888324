// Package auth contains authentication use cases.
package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

type fakeUserRepository struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type fakePasswordService struct{}

func (fakePasswordService) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakePasswordService) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) Generate(userID uuid.UUID) (string, error) { return "token-" + userID.String(), nil }

func (fakeTokenService) Validate(token string) (uuid.UUID, error) { return uuid.Nil, nil }

func TestRegisterUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and issues a token", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

		output, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "casey@example.com",
			Name:     "Casey",
			Password: "hunter22hunter22",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User.PasswordHash != "hashed:hunter22hunter22" {
			t.Error("expected the password to be hashed before storage")
		}
		if output.Token == "" {
			t.Error("expected an access token")
		}
		if !output.User.Settings.BillReminders || !output.User.Settings.WeeklyDigest || !output.User.Settings.MonthlyReport {
			t.Error("expected notifications enabled by default")
		}
		if _, ok := repo.byEmail["casey@example.com"]; !ok {
			t.Error("expected the user to be persisted")
		}
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		repo := newFakeUserRepository()
		repo.byEmail["casey@example.com"] = entity.NewUser("casey@example.com", "Casey", "hash")
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

		_, err := uc.Execute(ctx, RegisterUserInput{Email: "casey@example.com", Name: "Casey", Password: "hunter22hunter22"})
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Fatalf("expected duplicate-email error, got %v", err)
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newRepo := func() *fakeUserRepository {
		repo := newFakeUserRepository()
		repo.byEmail["casey@example.com"] = entity.NewUser("casey@example.com", "Casey", "hashed:hunter22hunter22")
		return repo
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		uc := NewLoginUserUseCase(newRepo(), fakePasswordService{}, fakeTokenService{})

		output, err := uc.Execute(ctx, LoginUserInput{Email: "casey@example.com", Password: "hunter22hunter22"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Token == "" {
			t.Error("expected an access token")
		}
	})

	t.Run("unknown email and wrong password yield the same error", func(t *testing.T) {
		uc := NewLoginUserUseCase(newRepo(), fakePasswordService{}, fakeTokenService{})

		_, unknownErr := uc.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "whatever"})
		_, wrongErr := uc.Execute(ctx, LoginUserInput{Email: "casey@example.com", Password: "wrong"})

		if !errors.Is(unknownErr, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected invalid-credentials for unknown email, got %v", unknownErr)
		}
		if !errors.Is(wrongErr, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected invalid-credentials for wrong password, got %v", wrongErr)
		}
		if unknownErr.Error() != wrongErr.Error() {
			t.Error("login failures must not reveal which field was wrong")
		}
	})
}
