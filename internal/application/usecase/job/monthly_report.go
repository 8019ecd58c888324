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

// MonthlyReportJob emails every user a summary of the current calendar
// month's income, expenses and savings. Runs monthly.
type MonthlyReportJob struct {
	users           adapter.UserRepository
	transactions    adapter.TransactionRepository
	email           adapter.EmailSender
	dispatchTimeout time.Duration
	now             func() time.Time
}

// NewMonthlyReportJob creates a new MonthlyReportJob instance.
func NewMonthlyReportJob(
	users adapter.UserRepository,
	transactions adapter.TransactionRepository,
	email adapter.EmailSender,
	dispatchTimeout time.Duration,
) *MonthlyReportJob {
	return &MonthlyReportJob{
		users:           users,
		transactions:    transactions,
		email:           email,
		dispatchTimeout: dispatchTimeout,
		now:             time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (j *MonthlyReportJob) WithClock(now func() time.Time) *MonthlyReportJob {
	j.now = now
	return j
}

// Name returns the scheduler identifier for this job.
func (j *MonthlyReportJob) Name() string { return "monthly-report" }

// Execute runs one report pass over the full user population. A single
// user's failure is recorded and the remaining users are still processed;
// the run reports its success count rather than halting on first error.
func (j *MonthlyReportJob) Execute(ctx context.Context) (*RunResult, error) {
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
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	month := monthStart.Format("2006-01")

	for _, user := range users {
		logger := slog.With("job", j.Name(), "user_id", user.ID)

		if !user.Settings.MonthlyReport {
			result.skip()
			continue
		}

		transactions, err := j.transactions.FindByUserInRange(ctx, user.ID, monthStart, monthEnd, 0)
		if err != nil {
			logger.Error("Failed to load monthly transactions", "error", err)
			result.record(user.ID, err)
			continue
		}

		income, expenses := windowTotals(transactions)
		savings := income.Sub(expenses)

		dispatchCtx, cancel := context.WithTimeout(ctx, j.dispatchTimeout)
		_, err = j.email.Send(dispatchCtx, adapter.SendEmailInput{
			To:      user.Email,
			Name:    user.Name,
			Subject: fmt.Sprintf("Your Monthly Financial Report - %s", month),
			Text:    monthlyReportBody(income, expenses, savings, len(transactions)),
		})
		cancel()

		if err != nil {
			logger.Error("Failed to send monthly report", "error", err)
			result.record(user.ID, err)
			continue
		}

		result.record(user.ID, nil)
	}

	slog.Info("Monthly report job completed",
		"month", month,
		"users", len(users),
		"sent", result.Succeeded,
		"skipped", result.Skipped,
		"failed", result.Failed(),
	)

	return result, nil
}
