// Package summary contains the financial aggregation use cases.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// monthKeyFormat is the layout for year-month trend keys ("2024-05").
const monthKeyFormat = "2006-01"

// Aggregation is the result of a single pass over a user's transactions.
type Aggregation struct {
	// CategorySpend maps category to total absolute expense amount. Income
	// transactions never contribute to this map.
	CategorySpend map[string]decimal.Decimal

	// MonthlyTrends maps a year-month key to the accumulated figures for
	// that calendar month.
	MonthlyTrends map[string]entity.MonthlyTrend
}

// Aggregate reduces a transaction set into per-category expense totals and a
// per-month income/expense/savings series. The input order does not matter:
// transactions are folded in ascending ID order, so identical sets always
// produce identical output. An empty input yields empty maps.
func Aggregate(transactions []*entity.Transaction) *Aggregation {
	sorted := make([]*entity.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	agg := &Aggregation{
		CategorySpend: make(map[string]decimal.Decimal),
		MonthlyTrends: make(map[string]entity.MonthlyTrend),
	}

	for _, tx := range sorted {
		month := monthKey(tx.Date)
		trend := agg.MonthlyTrends[month]

		switch tx.Type {
		case entity.TransactionTypeIncome:
			trend.Income = trend.Income.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			// Absolute value, so the stored sign convention does not matter.
			// Zero-amount expenses still materialize their category entry.
			amount := tx.Amount.Abs()
			agg.CategorySpend[tx.Category] = agg.CategorySpend[tx.Category].Add(amount)
			trend.Expense = trend.Expense.Add(amount)
		default:
			continue
		}

		trend.Savings = trend.Income.Sub(trend.Expense)
		agg.MonthlyTrends[month] = trend
	}

	return agg
}

// NetWorth returns the cumulative savings across every observed month. This
// is not a balance-sheet net worth; it is total savings since records began.
func (a *Aggregation) NetWorth() decimal.Decimal {
	total := decimal.Zero
	for _, trend := range a.MonthlyTrends {
		total = total.Add(trend.Savings)
	}
	return total
}

// monthKey truncates a timestamp to its UTC year-month key.
func monthKey(t time.Time) string {
	return t.UTC().Format(monthKeyFormat)
}
