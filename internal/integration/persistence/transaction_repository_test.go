// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

func TestTransactionRepository_FindByUserInRange(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()

	base := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("10")

	oldest := entity.NewTransaction(userID, "Old", amount, entity.TransactionTypeExpense, "Misc", base.AddDate(0, 0, -10))
	inside := entity.NewTransaction(userID, "Inside", amount, entity.TransactionTypeExpense, "Misc", base.AddDate(0, 0, -3))
	newest := entity.NewTransaction(userID, "Newest", amount, entity.TransactionTypeExpense, "Misc", base.AddDate(0, 0, -1))
	boundary := entity.NewTransaction(userID, "Boundary", amount, entity.TransactionTypeExpense, "Misc", base)
	otherUser := entity.NewTransaction(uuid.New(), "Foreign", amount, entity.TransactionTypeExpense, "Misc", base.AddDate(0, 0, -2))

	for _, transaction := range []*entity.Transaction{oldest, inside, newest, boundary, otherUser} {
		if err := repo.Create(ctx, transaction); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	start := base.AddDate(0, 0, -7)

	t.Run("window is half open and scoped to the user", func(t *testing.T) {
		found, err := repo.FindByUserInRange(ctx, userID, start, base, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(found) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(found))
		}
		// Most recent first.
		if found[0].Description != "Newest" || found[1].Description != "Inside" {
			t.Errorf("unexpected order: %s, %s", found[0].Description, found[1].Description)
		}
	})

	t.Run("limit caps the window head", func(t *testing.T) {
		found, err := repo.FindByUserInRange(ctx, userID, start, base, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 || found[0].Description != "Newest" {
			t.Errorf("expected just the newest transaction, got %+v", found)
		}
	})
}
