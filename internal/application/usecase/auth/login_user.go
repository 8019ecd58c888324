// Package auth contains authentication use cases.
package auth

import (
	"context"
	"errors"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// LoginUserInput represents the input for logging in.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of logging in.
type LoginUserOutput struct {
	User  *entity.User
	Token string
}

// LoginUserUseCase handles user login.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute verifies credentials and issues an access token. Unknown emails
// and wrong passwords produce the same error, so the response does not leak
// which one was wrong.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	invalidCredentials := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, invalidCredentials
		}
		return nil, err
	}

	if err := uc.passwordService.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials
	}

	token, err := uc.tokenService.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginUserOutput{User: user, Token: token}, nil
}
