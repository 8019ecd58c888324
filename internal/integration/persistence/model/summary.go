// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// FinancialSummaryModel represents the financial_summaries table. One row
// per user; refreshes overwrite the row entirely.
type FinancialSummaryModel struct {
	UserID         uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	NetWorth       decimal.Decimal                `gorm:"type:decimal(18,2);not null"`
	MonthlyTrends  map[string]entity.MonthlyTrend `gorm:"serializer:json"`
	BudgetInsights []entity.BudgetInsight         `gorm:"serializer:json"`
	LastUpdated    time.Time                      `gorm:"not null"`
}

// TableName returns the table name for the FinancialSummaryModel.
func (FinancialSummaryModel) TableName() string {
	return "financial_summaries"
}

// ToEntity converts a FinancialSummaryModel to a domain FinancialSummary entity.
func (m *FinancialSummaryModel) ToEntity() *entity.FinancialSummary {
	return &entity.FinancialSummary{
		NetWorth:       m.NetWorth,
		MonthlyTrends:  m.MonthlyTrends,
		BudgetInsights: m.BudgetInsights,
		LastUpdated:    m.LastUpdated,
	}
}

// SummaryFromEntity creates a FinancialSummaryModel from a domain entity.
func SummaryFromEntity(userID uuid.UUID, summary *entity.FinancialSummary) *FinancialSummaryModel {
	return &FinancialSummaryModel{
		UserID:         userID,
		NetWorth:       summary.NetWorth,
		MonthlyTrends:  summary.MonthlyTrends,
		BudgetInsights: summary.BudgetInsights,
		LastUpdated:    summary.LastUpdated,
	}
}
