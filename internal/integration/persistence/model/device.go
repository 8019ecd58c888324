// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// DeviceModel represents the devices table in the database.
type DeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_devices_user_token"`
	Token      string    `gorm:"type:varchar(500);not null;uniqueIndex:idx_devices_user_token"`
	Name       string    `gorm:"type:varchar(100)"`
	LastActive time.Time `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the DeviceModel.
func (DeviceModel) TableName() string {
	return "devices"
}

// ToEntity converts a DeviceModel to a domain Device entity.
func (m *DeviceModel) ToEntity() *entity.Device {
	return &entity.Device{
		ID:         m.ID,
		UserID:     m.UserID,
		Token:      m.Token,
		Name:       m.Name,
		LastActive: m.LastActive,
		CreatedAt:  m.CreatedAt,
	}
}

// DeviceFromEntity creates a DeviceModel from a domain Device entity.
func DeviceFromEntity(device *entity.Device) *DeviceModel {
	return &DeviceModel{
		ID:         device.ID,
		UserID:     device.UserID,
		Token:      device.Token,
		Name:       device.Name,
		LastActive: device.LastActive,
		CreatedAt:  device.CreatedAt,
	}
}
