package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/application/usecase/auth"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/entrypoint/dto"
)

// AuthController handles registration and login endpoints.
type AuthController struct {
	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(registerUseCase *auth.RegisterUserUseCase, loginUseCase *auth.LoginUserUseCase) *AuthController {
	return &AuthController{registerUseCase: registerUseCase, loginUseCase: loginUseCase}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{
				Error: "Email already registered",
				Code:  string(domainerror.ErrCodeEmailAlreadyExists),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to register user"})
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Token: output.Token,
		User:  dto.UserResponseFromEntity(output.User),
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid email or password",
				Code:  string(domainerror.ErrCodeInvalidCredentials),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to log in"})
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Token: output.Token,
		User:  dto.UserResponseFromEntity(output.User),
	})
}
