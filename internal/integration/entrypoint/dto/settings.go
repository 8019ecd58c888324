package dto

import (
	"time"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// SettingsRequest represents the notification settings update request body.
// Pointers distinguish "leave unchanged" from an explicit false.
type SettingsRequest struct {
	BillReminders *bool `json:"billReminders"`
	WeeklyDigest  *bool `json:"weeklyDigest"`
	MonthlyReport *bool `json:"monthlyReport"`
}

// SettingsResponse represents notification settings in API responses.
type SettingsResponse struct {
	BillReminders bool `json:"billReminders"`
	WeeklyDigest  bool `json:"weeklyDigest"`
	MonthlyReport bool `json:"monthlyReport"`
}

// SettingsResponseFromEntity converts notification settings to their API
// representation.
func SettingsResponseFromEntity(settings entity.NotificationSettings) SettingsResponse {
	return SettingsResponse{
		BillReminders: settings.BillReminders,
		WeeklyDigest:  settings.WeeklyDigest,
		MonthlyReport: settings.MonthlyReport,
	}
}

// Apply overlays the request on top of current settings.
func (r SettingsRequest) Apply(current entity.NotificationSettings) entity.NotificationSettings {
	if r.BillReminders != nil {
		current.BillReminders = *r.BillReminders
	}
	if r.WeeklyDigest != nil {
		current.WeeklyDigest = *r.WeeklyDigest
	}
	if r.MonthlyReport != nil {
		current.MonthlyReport = *r.MonthlyReport
	}
	return current
}

// RegisterDeviceRequest represents the device registration request body.
type RegisterDeviceRequest struct {
	Token string `json:"token" binding:"required"`
	Name  string `json:"name"`
}

// DeviceResponse represents a push device in API responses.
type DeviceResponse struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	Name       string    `json:"name,omitempty"`
	LastActive time.Time `json:"lastActive"`
}

// DeviceResponseFromEntity converts a device entity to its API representation.
func DeviceResponseFromEntity(device *entity.Device) DeviceResponse {
	return DeviceResponse{
		ID:         device.ID.String(),
		Token:      device.Token,
		Name:       device.Name,
		LastActive: device.LastActive,
	}
}
