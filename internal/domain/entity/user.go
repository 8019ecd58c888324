// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSettings holds a user's notification preferences.
type NotificationSettings struct {
	BillReminders bool
	WeeklyDigest  bool
	MonthlyReport bool
}

// User represents a user in the Pennyflow system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Settings     NotificationSettings
	PushToken    string // Most recently registered push endpoint, empty if none
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default notification settings.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Settings: NotificationSettings{
			BillReminders: true,
			WeeklyDigest:  true,
			MonthlyReport: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CanReceivePush reports whether the user both opted into bill reminders
// and has a registered push endpoint.
func (u *User) CanReceivePush() bool {
	return u.Settings.BillReminders && u.PushToken != ""
}
