// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a push-notification device registration.
type Device struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Token      string
	Name       string
	LastActive time.Time
	CreatedAt  time.Time
}

// NewDevice creates a new Device registration.
func NewDevice(userID uuid.UUID, token, name string) *Device {
	now := time.Now().UTC()
	return &Device{
		ID:         uuid.New(),
		UserID:     userID,
		Token:      token,
		Name:       name,
		LastActive: now,
		CreatedAt:  now,
	}
}

// Touch refreshes the device's last-active timestamp.
func (d *Device) Touch() {
	d.LastActive = time.Now().UTC()
}
