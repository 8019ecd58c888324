// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/application/usecase/auth"
	"github.com/pennyflow/backend/internal/application/usecase/finance"
	"github.com/pennyflow/backend/internal/application/usecase/settings"
	"github.com/pennyflow/backend/internal/application/usecase/summary"
	"github.com/pennyflow/backend/internal/infra/server/router"
	"github.com/pennyflow/backend/internal/integration/adapters"
	"github.com/pennyflow/backend/internal/integration/entrypoint/controller"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
	"github.com/pennyflow/backend/internal/integration/persistence"
	"github.com/pennyflow/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// TestContext holds the test state for each scenario.
type TestContext struct {
	db     *mock.Db
	server *httptest.Server

	response     *http.Response
	responseBody []byte

	accessToken string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// newTestServer wires the full HTTP stack against the scenario's database.
// The summary cache stays nil; caching behavior is covered by unit tests.
func newTestServer(db *mock.Db) *httptest.Server {
	conn := db.DbConn

	userRepo := persistence.NewUserRepository(conn)
	transactionRepo := persistence.NewTransactionRepository(conn)
	budgetRepo := persistence.NewBudgetRepository(conn)
	billRepo := persistence.NewBillRepository(conn)
	deviceRepo := persistence.NewDeviceRepository(conn)
	summaryRepo := persistence.NewSummaryRepository(conn)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)

	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
	)
	financeController := controller.NewFinanceController(
		finance.NewListTransactionsUseCase(transactionRepo),
		finance.NewCreateTransactionUseCase(transactionRepo, nil),
		finance.NewListBudgetsUseCase(budgetRepo),
		finance.NewCreateBudgetUseCase(budgetRepo, nil),
		finance.NewListBillsUseCase(billRepo),
		finance.NewCreateBillUseCase(billRepo),
	)
	settingsController := controller.NewSettingsController(
		settings.NewGetSettingsUseCase(userRepo),
		settings.NewUpdateSettingsUseCase(userRepo),
		settings.NewRegisterDeviceUseCase(userRepo, deviceRepo),
		settings.NewRemoveDeviceUseCase(userRepo, deviceRepo),
	)
	summaryController := controller.NewSummaryController(
		summary.NewGetSummaryUseCase(summaryRepo, nil),
		summary.NewRefreshSummaryUseCase(userRepo, transactionRepo, budgetRepo, summaryRepo, nil),
	)
	healthController := controller.NewHealthController(func() bool { return true })

	r := router.NewRouter(
		healthController,
		authController,
		financeController,
		settingsController,
		summaryController,
		middleware.NewRateLimiterWithConfig(1000, time.Minute),
		middleware.NewAuthMiddleware(tokenService),
	)

	return httptest.NewServer(r.Setup("test"))
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{db: mock.NewDb()}
		tc.server = newTestServer(tc.db)
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.db != nil {
				tc.db.Close()
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerAssertionSteps(ctx)
}
