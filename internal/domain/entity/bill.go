// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultBillCategory is used when a bill is created without a category.
const DefaultBillCategory = "Other"

// Bill represents a recurring obligation with a due date.
type Bill struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Amount        decimal.Decimal
	DueDate       time.Time
	Category      string
	Paid          bool
	ReminderSent  bool
	PaymentMethod string
	CreatedAt     time.Time
}

// NewBill creates a new Bill entity.
func NewBill(userID uuid.UUID, name string, amount decimal.Decimal, dueDate time.Time, category, paymentMethod string) *Bill {
	if category == "" {
		category = DefaultBillCategory
	}

	return &Bill{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Amount:        amount,
		DueDate:       dueDate,
		Category:      category,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now().UTC(),
	}
}

// MarkReminderSent records that a reminder was dispatched for this bill.
// The flag transitions false to true exactly once per bill and is never
// reset by the reminder pipeline.
func (b *Bill) MarkReminderSent() {
	b.ReminderSent = true
}

// NeedsReminder reports whether the bill is due within the window and has
// not yet been reminded about or paid.
func (b *Bill) NeedsReminder(dueBefore time.Time) bool {
	return !b.Paid && !b.ReminderSent && !b.DueDate.After(dueBefore)
}

// BillWithOwner pairs a bill with its owning user, as loaded by the
// reminder job's due-bill query.
type BillWithOwner struct {
	Bill  *Bill
	Owner *User
}
