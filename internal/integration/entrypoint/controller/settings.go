package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/application/usecase/settings"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/entrypoint/dto"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
)

// SettingsController handles notification settings and device endpoints.
type SettingsController struct {
	getSettings    *settings.GetSettingsUseCase
	updateSettings *settings.UpdateSettingsUseCase
	registerDevice *settings.RegisterDeviceUseCase
	removeDevice   *settings.RemoveDeviceUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getSettings *settings.GetSettingsUseCase,
	updateSettings *settings.UpdateSettingsUseCase,
	registerDevice *settings.RegisterDeviceUseCase,
	removeDevice *settings.RemoveDeviceUseCase,
) *SettingsController {
	return &SettingsController{
		getSettings:    getSettings,
		updateSettings: updateSettings,
		registerDevice: registerDevice,
		removeDevice:   removeDevice,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	current, err := c.getSettings.Execute(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load settings"})
		return
	}

	ctx.JSON(http.StatusOK, dto.SettingsResponseFromEntity(current))
}

// Update handles PUT /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.SettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	current, err := c.getSettings.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load settings"})
		return
	}

	updated, err := c.updateSettings.Execute(ctx.Request.Context(), settings.UpdateSettingsInput{
		UserID:   userID,
		Settings: req.Apply(current),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update settings"})
		return
	}

	ctx.JSON(http.StatusOK, dto.SettingsResponseFromEntity(updated))
}

// RegisterDevice handles POST /settings/devices requests.
func (c *SettingsController) RegisterDevice(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.RegisterDeviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	device, err := c.registerDevice.Execute(ctx.Request.Context(), settings.RegisterDeviceInput{
		UserID: userID,
		Token:  req.Token,
		Name:   req.Name,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to register device"})
		return
	}

	ctx.JSON(http.StatusCreated, dto.DeviceResponseFromEntity(device))
}

// RemoveDevice handles DELETE /settings/devices/:token requests.
func (c *SettingsController) RemoveDevice(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	token := ctx.Param("token")
	if token == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Device token required"})
		return
	}

	if err := c.removeDevice.Execute(ctx.Request.Context(), settings.RemoveDeviceInput{
		UserID: userID,
		Token:  token,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to remove device"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
