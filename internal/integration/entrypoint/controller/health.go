// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{dbHealthChecker: dbHealthChecker}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	response := HealthResponse{Status: "ok", Database: "up"}
	status := http.StatusOK

	if c.dbHealthChecker != nil && !c.dbHealthChecker() {
		response.Status = "degraded"
		response.Database = "down"
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, response)
}
