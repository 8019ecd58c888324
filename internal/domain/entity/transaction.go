// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a financial transaction in the Pennyflow system.
// Transactions are immutable from the aggregation engine's point of view:
// the summary and job pipelines only ever read them.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string // Free-form label, not validated against a fixed set
	Date        time.Time
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
	}
}
