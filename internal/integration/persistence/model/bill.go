// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// BillModel represents the bills table in the database.
type BillModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate       time.Time       `gorm:"not null;index"`
	Category      string          `gorm:"type:varchar(100);not null;default:'Other'"`
	Paid          bool            `gorm:"default:false"`
	ReminderSent  bool            `gorm:"default:false"`
	PaymentMethod string          `gorm:"type:varchar(100)"`
	CreatedAt     time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BillModel.
func (BillModel) TableName() string {
	return "bills"
}

// ToEntity converts a BillModel to a domain Bill entity.
func (m *BillModel) ToEntity() *entity.Bill {
	return &entity.Bill{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Amount:        m.Amount,
		DueDate:       m.DueDate,
		Category:      m.Category,
		Paid:          m.Paid,
		ReminderSent:  m.ReminderSent,
		PaymentMethod: m.PaymentMethod,
		CreatedAt:     m.CreatedAt,
	}
}

// ToEntityWithOwner converts a BillModel with its preloaded User to a
// BillWithOwner entity.
func (m *BillModel) ToEntityWithOwner() *entity.BillWithOwner {
	result := &entity.BillWithOwner{
		Bill: m.ToEntity(),
	}
	if m.User != nil {
		result.Owner = m.User.ToEntity()
	}
	return result
}

// BillFromEntity creates a BillModel from a domain Bill entity.
func BillFromEntity(bill *entity.Bill) *BillModel {
	return &BillModel{
		ID:            bill.ID,
		UserID:        bill.UserID,
		Name:          bill.Name,
		Amount:        bill.Amount,
		DueDate:       bill.DueDate,
		Category:      bill.Category,
		Paid:          bill.Paid,
		ReminderSent:  bill.ReminderSent,
		PaymentMethod: bill.PaymentMethod,
		CreatedAt:     bill.CreatedAt,
	}
}
