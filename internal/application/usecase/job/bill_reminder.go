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

// reminderWindow is how far ahead of the due date a reminder goes out.
const reminderWindow = 24 * time.Hour

// BillReminderJob sends a push notification for every unpaid bill coming due
// within the next day, then flags the bill so the reminder goes out at most
// once. Runs daily.
type BillReminderJob struct {
	bills           adapter.BillRepository
	push            adapter.PushSender
	dispatchTimeout time.Duration
	now             func() time.Time
}

// NewBillReminderJob creates a new BillReminderJob instance.
func NewBillReminderJob(bills adapter.BillRepository, push adapter.PushSender, dispatchTimeout time.Duration) *BillReminderJob {
	return &BillReminderJob{
		bills:           bills,
		push:            push,
		dispatchTimeout: dispatchTimeout,
		now:             time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (j *BillReminderJob) WithClock(now func() time.Time) *BillReminderJob {
	j.now = now
	return j
}

// Name returns the scheduler identifier for this job.
func (j *BillReminderJob) Name() string { return "bill-reminder" }

// Execute runs one reminder pass. A bill's reminder-sent flag is persisted
// only after its notification was actually delivered, so the flag always
// implies at least one dispatched reminder. Per-bill failures are logged and
// do not abort the rest of the batch; only a failed population fetch fails
// the run.
func (j *BillReminderJob) Execute(ctx context.Context) (*RunResult, error) {
	result := newRunResult(j.Name())

	dueBefore := j.now().Add(reminderWindow)
	due, err := j.bills.FindDueForReminder(ctx, dueBefore)
	if err != nil {
		return result, domainerror.NewJobError(
			domainerror.ErrCodePopulationFetchFailed,
			"failed to fetch due bills",
			err,
		)
	}

	for _, item := range due {
		bill, owner := item.Bill, item.Owner
		logger := slog.With("job", j.Name(), "bill_id", bill.ID, "user_id", bill.UserID)

		if !owner.CanReceivePush() {
			result.skip()
			continue
		}

		dispatchCtx, cancel := context.WithTimeout(ctx, j.dispatchTimeout)
		err := j.push.SendPush(dispatchCtx, adapter.SendPushInput{
			Token: owner.PushToken,
			Title: "Upcoming Bill",
			Body:  fmt.Sprintf("%s for %s is due soon", bill.Name, bill.Amount.StringFixed(2)),
		})
		cancel()

		if err != nil {
			// Delivery failed, so the reminder-sent flag must stay false.
			logger.Error("Failed to send bill reminder", "error", err)
			result.record(bill.ID, err)
			continue
		}

		bill.MarkReminderSent()
		if err := j.bills.Update(ctx, bill); err != nil {
			logger.Error("Failed to persist reminder flag", "error", err)
			result.record(bill.ID, err)
			continue
		}

		logger.Info("Sent bill reminder", "bill_name", bill.Name, "recipient", owner.Email)
		result.record(bill.ID, nil)
	}

	slog.Info("Bill reminder job completed",
		"matched", len(due),
		"reminded", result.Succeeded,
		"skipped", result.Skipped,
		"failed", result.Failed(),
	)

	return result, nil
}
