// Package summary contains the financial aggregation use cases.
package summary

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// RefreshSummaryUseCase recomputes and persists a user's financial summary.
// It is invoked on demand by the dashboard refresh endpoint and as a step
// inside the batch jobs.
type RefreshSummaryUseCase struct {
	userRepo        adapter.UserRepository
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	summaryRepo     adapter.SummaryRepository
	cache           adapter.SummaryCache
	now             func() time.Time
}

// NewRefreshSummaryUseCase creates a new RefreshSummaryUseCase instance.
// The cache may be nil when no cache layer is configured.
func NewRefreshSummaryUseCase(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	summaryRepo adapter.SummaryRepository,
	cache adapter.SummaryCache,
) *RefreshSummaryUseCase {
	return &RefreshSummaryUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		summaryRepo:     summaryRepo,
		cache:           cache,
		now:             time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (uc *RefreshSummaryUseCase) WithClock(now func() time.Time) *RefreshSummaryUseCase {
	uc.now = now
	return uc
}

// Execute recomputes the user's summary from the full transaction and budget
// history and overwrites the persisted snapshot. The computation is a pure
// function of its inputs, so re-running it on the same data yields an
// identical summary.
//
// When persistence fails the computed summary is still returned alongside
// the storage error, so callers can observe what would have been saved.
func (uc *RefreshSummaryUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.FinancialSummary, error) {
	if _, err := uc.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewSummaryError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				err,
			)
		}
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeSummaryReadFailed,
			"failed to load user",
			err,
		)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeSummaryReadFailed,
			"failed to load transactions",
			err,
		)
	}

	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeSummaryReadFailed,
			"failed to load budgets",
			err,
		)
	}

	agg := Aggregate(transactions)

	result := &entity.FinancialSummary{
		NetWorth:       agg.NetWorth(),
		MonthlyTrends:  agg.MonthlyTrends,
		BudgetInsights: EvaluateBudgets(agg.CategorySpend, budgets),
		LastUpdated:    uc.now().UTC(),
	}

	if err := uc.summaryRepo.Save(ctx, userID, result); err != nil {
		return result, domainerror.NewSummaryError(
			domainerror.ErrCodeSummaryWriteFailed,
			"failed to persist financial summary",
			err,
		)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, userID); err != nil {
			slog.Warn("Failed to invalidate summary cache", "user_id", userID, "error", err)
		}
	}

	return result, nil
}
