// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	BillReminders bool      `gorm:"default:true"`
	WeeklyDigest  bool      `gorm:"default:true"`
	MonthlyReport bool      `gorm:"default:true"`
	PushToken     string    `gorm:"type:varchar(500)"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Settings: entity.NotificationSettings{
			BillReminders: m.BillReminders,
			WeeklyDigest:  m.WeeklyDigest,
			MonthlyReport: m.MonthlyReport,
		},
		PushToken: m.PushToken,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		PasswordHash:  user.PasswordHash,
		BillReminders: user.Settings.BillReminders,
		WeeklyDigest:  user.Settings.WeeklyDigest,
		MonthlyReport: user.Settings.MonthlyReport,
		PushToken:     user.PushToken,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
