// Package job contains the recurring batch jobs driven by the scheduler.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pennyflow/backend/internal/application/adapter"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

const (
	// digestWindow is the trailing window a digest covers.
	digestWindow = 7 * 24 * time.Hour

	// digestTransactionCap bounds how many transactions a digest considers.
	digestTransactionCap = 50

	// digestRecentCount is how many recent transactions appear verbatim.
	digestRecentCount = 5
)

// WeeklyDigestJob emails every user a digest of the trailing seven days,
// capped to the most recent transactions. Runs weekly.
type WeeklyDigestJob struct {
	users           adapter.UserRepository
	transactions    adapter.TransactionRepository
	email           adapter.EmailSender
	dispatchTimeout time.Duration
	now             func() time.Time
}

// NewWeeklyDigestJob creates a new WeeklyDigestJob instance.
func NewWeeklyDigestJob(
	users adapter.UserRepository,
	transactions adapter.TransactionRepository,
	email adapter.EmailSender,
	dispatchTimeout time.Duration,
) *WeeklyDigestJob {
	return &WeeklyDigestJob{
		users:           users,
		transactions:    transactions,
		email:           email,
		dispatchTimeout: dispatchTimeout,
		now:             time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (j *WeeklyDigestJob) WithClock(now func() time.Time) *WeeklyDigestJob {
	j.now = now
	return j
}

// Name returns the scheduler identifier for this job.
func (j *WeeklyDigestJob) Name() string { return "weekly-digest" }

// Execute runs one digest pass over the full user population with the same
// isolation discipline as the monthly report job.
func (j *WeeklyDigestJob) Execute(ctx context.Context) (*RunResult, error) {
	result := newRunResult(j.Name())

	users, err := j.users.FindAll(ctx)
	if err != nil {
		return result, domainerror.NewJobError(
			domainerror.ErrCodePopulationFetchFailed,
			"failed to fetch users",
			err,
		)
	}

	now := j.now().UTC()
	weekStart := now.Add(-digestWindow)

	for _, user := range users {
		logger := slog.With("job", j.Name(), "user_id", user.ID)

		if !user.Settings.WeeklyDigest {
			result.skip()
			continue
		}

		// Most recent first, capped; the window head doubles as the
		// verbatim recent-transactions section.
		transactions, err := j.transactions.FindByUserInRange(ctx, user.ID, weekStart, now, digestTransactionCap)
		if err != nil {
			logger.Error("Failed to load weekly transactions", "error", err)
			result.record(user.ID, err)
			continue
		}

		income, expenses := windowTotals(transactions)
		recent := transactions
		if len(recent) > digestRecentCount {
			recent = recent[:digestRecentCount]
		}

		dispatchCtx, cancel := context.WithTimeout(ctx, j.dispatchTimeout)
		_, err = j.email.Send(dispatchCtx, adapter.SendEmailInput{
			To:      user.Email,
			Name:    user.Name,
			Subject: fmt.Sprintf("Your Weekly Financial Digest - %s", now.Format(digestDateFormat)),
			Text:    weeklyDigestBody(weekStart, now, income, expenses, income.Sub(expenses), len(transactions), recent),
		})
		cancel()

		if err != nil {
			logger.Error("Failed to send weekly digest", "error", err)
			result.record(user.ID, err)
			continue
		}

		result.record(user.ID, nil)
	}

	slog.Info("Weekly digest job completed",
		"users", len(users),
		"sent", result.Succeeded,
		"skipped", result.Skipped,
		"failed", result.Failed(),
	)

	return result, nil
}
