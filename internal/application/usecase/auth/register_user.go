// Package auth contains authentication use cases.
package auth

import (
	"context"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// RegisterUserInput represents the input for registering a user.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
}

// RegisterUserOutput represents the output of registering a user.
type RegisterUserOutput struct {
	User  *entity.User
	Token string
}

// RegisterUserUseCase handles user registration.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute registers a new user and issues an access token.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyExists,
			"email already registered",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	hash, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(input.Email, input.Name, hash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokenService.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &RegisterUserOutput{User: user, Token: token}, nil
}
