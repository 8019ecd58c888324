// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database. No uniqueness
// is enforced on (user_id, category); duplicates are legal.
type BudgetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category    string          `gorm:"type:varchar(100);not null"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		UserID:    m.UserID,
		Category:  m.Category,
		Limit:     m.LimitAmount,
		CreatedAt: m.CreatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:          budget.ID,
		UserID:      budget.UserID,
		Category:    budget.Category,
		LimitAmount: budget.Limit,
		CreatedAt:   budget.CreatedAt,
	}
}
