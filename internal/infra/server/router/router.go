// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/integration/entrypoint/controller"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	financeController  *controller.FinanceController
	settingsController *controller.SettingsController
	summaryController  *controller.SummaryController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	financeController *controller.FinanceController,
	settingsController *controller.SettingsController,
	summaryController *controller.SummaryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		financeController:  financeController,
		settingsController: settingsController,
		summaryController:  summaryController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Finance routes (require authentication)
		if r.financeController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.financeController.ListTransactions)
				transactions.POST("", r.financeController.CreateTransaction)
			}

			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.financeController.ListBudgets)
				budgets.POST("", r.financeController.CreateBudget)
			}

			bills := v1.Group("/bills")
			bills.Use(r.authMiddleware.Authenticate())
			{
				bills.GET("", r.financeController.ListBills)
				bills.POST("", r.financeController.CreateBill)
			}
		}

		// Summary routes (require authentication)
		if r.summaryController != nil && r.authMiddleware != nil {
			summary := v1.Group("/summary")
			summary.Use(r.authMiddleware.Authenticate())
			{
				summary.GET("", r.summaryController.Get)
				summary.POST("/refresh", r.summaryController.Refresh)
			}
		}

		// Settings and device routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("", r.settingsController.Get)
				settings.PUT("", r.settingsController.Update)
				settings.POST("/devices", r.settingsController.RegisterDevice)
				settings.DELETE("/devices/:token", r.settingsController.RemoveDevice)
			}
		}
	}
}
