// Package main is the entry point for the Pennyflow API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pennyflow/backend/config"
	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/application/usecase/auth"
	"github.com/pennyflow/backend/internal/application/usecase/finance"
	"github.com/pennyflow/backend/internal/application/usecase/job"
	"github.com/pennyflow/backend/internal/application/usecase/settings"
	"github.com/pennyflow/backend/internal/application/usecase/summary"
	"github.com/pennyflow/backend/internal/infra/db"
	"github.com/pennyflow/backend/internal/infra/scheduler"
	"github.com/pennyflow/backend/internal/infra/server/router"
	"github.com/pennyflow/backend/internal/integration/adapters"
	"github.com/pennyflow/backend/internal/integration/cache"
	"github.com/pennyflow/backend/internal/integration/entrypoint/controller"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
	"github.com/pennyflow/backend/internal/integration/notification"
	"github.com/pennyflow/backend/internal/integration/persistence"
	"github.com/pennyflow/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Pennyflow API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.BillModel{},
		&model.DeviceModel{},
		&model.FinancialSummaryModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis for the summary cache. The cache is optional, the
	// API degrades to reading summaries from the database.
	var summaryCache *cache.SummaryCache
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, summary cache disabled", "error", err)
	} else {
		if cfg.Redis.Password != "" {
			redisOpts.Password = cfg.Redis.Password
		}
		redisOpts.DB = cfg.Redis.DB
		summaryCache = cache.NewSummaryCache(redis.NewClient(redisOpts), cfg.Redis.SummaryTTL)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())
	billRepo := persistence.NewBillRepository(database.DB())
	deviceRepo := persistence.NewDeviceRepository(database.DB())
	summaryRepo := persistence.NewSummaryRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	emailSender := notification.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	pushSender := notification.NewPushClient(cfg.Push.Endpoint, cfg.Scheduler.DispatchTimeout)

	// Create use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	listTransactionsUseCase := finance.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := finance.NewCreateTransactionUseCase(transactionRepo, summaryCacheOrNil(summaryCache))
	listBudgetsUseCase := finance.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := finance.NewCreateBudgetUseCase(budgetRepo, summaryCacheOrNil(summaryCache))
	listBillsUseCase := finance.NewListBillsUseCase(billRepo)
	createBillUseCase := finance.NewCreateBillUseCase(billRepo)

	getSettingsUseCase := settings.NewGetSettingsUseCase(userRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(userRepo)
	registerDeviceUseCase := settings.NewRegisterDeviceUseCase(userRepo, deviceRepo)
	removeDeviceUseCase := settings.NewRemoveDeviceUseCase(userRepo, deviceRepo)

	refreshSummaryUseCase := summary.NewRefreshSummaryUseCase(userRepo, transactionRepo, budgetRepo, summaryRepo, summaryCacheOrNil(summaryCache))
	getSummaryUseCase := summary.NewGetSummaryUseCase(summaryRepo, summaryCacheOrNil(summaryCache))

	// Create controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	financeController := controller.NewFinanceController(
		listTransactionsUseCase,
		createTransactionUseCase,
		listBudgetsUseCase,
		createBudgetUseCase,
		listBillsUseCase,
		createBillUseCase,
	)
	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
		registerDeviceUseCase,
		removeDeviceUseCase,
	)
	summaryController := controller.NewSummaryController(getSummaryUseCase, refreshSummaryUseCase)
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		financeController,
		settingsController,
		summaryController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Start the recurring job scheduler
	var jobScheduler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobScheduler = scheduler.New()

		billReminderJob := job.NewBillReminderJob(billRepo, pushSender, cfg.Scheduler.DispatchTimeout)
		monthlyReportJob := job.NewMonthlyReportJob(userRepo, transactionRepo, emailSender, cfg.Scheduler.DispatchTimeout)
		weeklyDigestJob := job.NewWeeklyDigestJob(userRepo, transactionRepo, emailSender, cfg.Scheduler.DispatchTimeout)
		deviceCleanupJob := job.NewDeviceCleanupJob(deviceRepo)

		registrations := []struct {
			id      string
			cadence string
			handler scheduler.Handler
		}{
			{billReminderJob.Name(), cfg.Scheduler.BillReminderCadence, func(ctx context.Context) error {
				_, err := billReminderJob.Execute(ctx)
				return err
			}},
			{monthlyReportJob.Name(), cfg.Scheduler.MonthlyReportCadence, func(ctx context.Context) error {
				_, err := monthlyReportJob.Execute(ctx)
				return err
			}},
			{weeklyDigestJob.Name(), cfg.Scheduler.WeeklyDigestCadence, func(ctx context.Context) error {
				_, err := weeklyDigestJob.Execute(ctx)
				return err
			}},
			{deviceCleanupJob.Name(), cfg.Scheduler.DeviceCleanupCadence, func(ctx context.Context) error {
				_, err := deviceCleanupJob.Execute(ctx)
				return err
			}},
		}
		for _, reg := range registrations {
			if err := jobScheduler.Register(reg.id, reg.cadence, reg.handler); err != nil {
				slog.Error("Failed to register job", "job", reg.id, "error", err)
				os.Exit(1)
			}
		}

		jobScheduler.Start(context.Background())
		slog.Info("Job scheduler started", "jobs", len(registrations))
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	if jobScheduler != nil {
		jobScheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// summaryCacheOrNil avoids handing a typed nil pointer to use cases that
// treat a nil interface as "cache disabled".
func summaryCacheOrNil(c *cache.SummaryCache) adapter.SummaryCache {
	if c == nil {
		return nil
	}
	return c
}
