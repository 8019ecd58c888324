package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/application/usecase/summary"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/entrypoint/dto"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles financial summary endpoints.
type SummaryController struct {
	getUseCase     *summary.GetSummaryUseCase
	refreshUseCase *summary.RefreshSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(getUseCase *summary.GetSummaryUseCase, refreshUseCase *summary.RefreshSummaryUseCase) *SummaryController {
	return &SummaryController{getUseCase: getUseCase, refreshUseCase: refreshUseCase}
}

// Get handles GET /summary requests.
func (c *SummaryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	result, err := c.getUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "No summary found, refresh first",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load summary"})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Refresh handles POST /summary/refresh requests. A persistence failure
// after computation still returns the fresh summary, flagged as not saved.
func (c *SummaryController) Refresh(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	result, err := c.refreshUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			return
		}
		if result != nil {
			ctx.JSON(http.StatusOK, gin.H{"summary": result, "saved": false})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to refresh summary"})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
