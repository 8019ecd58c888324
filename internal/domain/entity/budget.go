// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a per-category spending limit for a user.
// Nothing enforces uniqueness of (user, category); duplicate rows are
// evaluated independently by the insight evaluator.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Limit     decimal.Decimal
	CreatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category string, limit decimal.Decimal) *Budget {
	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Limit:     limit,
		CreatedAt: time.Now().UTC(),
	}
}
