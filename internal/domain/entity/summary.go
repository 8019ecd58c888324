// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsightStatus classifies spending against a budget limit.
type InsightStatus string

const (
	InsightStatusUnder InsightStatus = "under"
	InsightStatusNear  InsightStatus = "near"
	InsightStatusOver  InsightStatus = "over"
)

// BudgetInsight is the derived status of one budget entry. Remaining is
// always Limit minus Spent; it is never stored independently. Percentage is
// nil when the limit is zero and money was spent, since the ratio is
// undefined in that case.
type BudgetInsight struct {
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage *float64        `json:"percentage"`
	Status     InsightStatus   `json:"status"`
}

// MonthlyTrend holds the accumulated figures for one calendar month.
// Savings is always Income minus Expense.
type MonthlyTrend struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"`
}

// FinancialSummary is the persisted per-user snapshot produced by the
// summary builder. It is recomputed from scratch on every refresh; the
// previous snapshot is overwritten entirely.
type FinancialSummary struct {
	NetWorth       decimal.Decimal         `json:"net_worth"`
	MonthlyTrends  map[string]MonthlyTrend `json:"monthly_trends"` // keyed by "YYYY-MM"
	BudgetInsights []BudgetInsight         `json:"budget_insights"`
	LastUpdated    time.Time               `json:"last_updated"`
}
