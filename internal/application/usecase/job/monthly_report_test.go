// Package job contains the recurring batch jobs driven by the scheduler.
package job

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/notification"
)

func newReportTransaction(userID uuid.UUID, transactionType entity.TransactionType, amount string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		UserID:   userID,
		Amount:   decimal.RequireFromString(amount),
		Type:     transactionType,
		Category: "General",
		Date:     date,
	}
}

func TestMonthlyReportJob_Execute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 31, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("emails each opted-in user their month totals", func(t *testing.T) {
		user := entity.NewUser("casey@example.com", "Casey", "hash")
		users := &fakeUserRepository{users: []*entity.User{user}}
		transactions := newFakeTransactionRepository(
			newReportTransaction(user.ID, entity.TransactionTypeIncome, "1500", now.AddDate(0, 0, -10)),
			newReportTransaction(user.ID, entity.TransactionTypeExpense, "165.99", now.AddDate(0, 0, -5)),
			// April spend stays out of the May report.
			newReportTransaction(user.ID, entity.TransactionTypeExpense, "999", now.AddDate(0, -1, 0)),
		)
		email := notification.NewMockEmailSender()

		result, err := NewMonthlyReportJob(users, transactions, email, time.Second).WithClock(clock).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Succeeded != 1 {
			t.Errorf("expected 1 report sent, got %d", result.Succeeded)
		}
		if len(email.SentEmails) != 1 {
			t.Fatalf("expected 1 email, got %d", len(email.SentEmails))
		}

		sent := email.SentEmails[0]
		if sent.Subject != "Your Monthly Financial Report - 2024-05" {
			t.Errorf("unexpected subject: %s", sent.Subject)
		}
		for _, want := range []string{"Income: $1500.00", "Expenses: $165.99", "Savings: $1334.01", "Transactions: 2"} {
			if !strings.Contains(sent.Text, want) {
				t.Errorf("expected body to contain %q, got:\n%s", want, sent.Text)
			}
		}
	})

	t.Run("skips users who disabled monthly reports", func(t *testing.T) {
		user := entity.NewUser("quiet@example.com", "Quiet", "hash")
		user.Settings.MonthlyReport = false
		users := &fakeUserRepository{users: []*entity.User{user}}
		email := notification.NewMockEmailSender()

		result, err := NewMonthlyReportJob(users, newFakeTransactionRepository(), email, time.Second).WithClock(clock).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Skipped != 1 || len(email.SentEmails) != 0 {
			t.Errorf("expected a skip and no email, got %+v with %d emails", result, len(email.SentEmails))
		}
	})

	t.Run("one failing user does not stop the batch", func(t *testing.T) {
		first := entity.NewUser("first@example.com", "First", "hash")
		broken := entity.NewUser("broken@example.com", "Broken", "hash")
		last := entity.NewUser("last@example.com", "Last", "hash")
		users := &fakeUserRepository{users: []*entity.User{first, broken, last}}
		email := notification.NewMockEmailSender()
		email.SetFailure(broken.Email, errors.New("mailbox on fire"))

		result, err := NewMonthlyReportJob(users, newFakeTransactionRepository(), email, time.Second).WithClock(clock).Execute(ctx)
		if err != nil {
			t.Fatalf("per-user failures must not fail the run: %v", err)
		}

		if result.Succeeded != 2 || result.Failed() != 1 {
			t.Errorf("expected 2 successes and 1 failure, got %+v", result)
		}
		if len(email.SentEmails) != 2 {
			t.Errorf("expected 2 emails, got %d", len(email.SentEmails))
		}
	})

	t.Run("transaction load failure is a per-user failure", func(t *testing.T) {
		user := entity.NewUser("casey@example.com", "Casey", "hash")
		users := &fakeUserRepository{users: []*entity.User{user}}
		transactions := newFakeTransactionRepository()
		transactions.findErrFor[user.ID] = errors.New("query timeout")
		email := notification.NewMockEmailSender()

		result, err := NewMonthlyReportJob(users, transactions, email, time.Second).WithClock(clock).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Failed() != 1 || len(email.SentEmails) != 0 {
			t.Errorf("expected 1 failure and no email, got %+v", result)
		}
	})

	t.Run("population fetch failure fails the run", func(t *testing.T) {
		users := &fakeUserRepository{findErr: errors.New("db offline")}

		_, err := NewMonthlyReportJob(users, newFakeTransactionRepository(), notification.NewMockEmailSender(), time.Second).Execute(ctx)

		var jobErr *domainerror.JobError
		if !errors.As(err, &jobErr) || jobErr.Code != domainerror.ErrCodePopulationFetchFailed {
			t.Fatalf("expected population fetch error, got %v", err)
		}
	})
}
