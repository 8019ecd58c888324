// Package summary contains the financial aggregation use cases.
package summary

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// nearThreshold is the fraction of the limit above which status becomes "near".
var nearThreshold = decimal.NewFromFloat(0.8)

var oneHundred = decimal.NewFromInt(100)

// EvaluateBudgets produces one insight per budget entry. Categories without
// a budget yield no insight; budgets whose category has no recorded spend are
// evaluated with spent = 0. Duplicate budget rows for the same category each
// produce their own insight.
//
// Status is a deterministic function of spend against limit: over when
// spent > limit, near when 0.8*limit < spent <= limit, under otherwise.
// A zero limit makes the percentage undefined; the policy is spent > 0 with
// limit = 0 reports status over with a nil percentage, and spent = 0 with
// limit = 0 reports under with percentage 0.
//
// Budget rows with a negative limit are malformed numeric input: they are
// skipped and logged, never fatal to the batch.
func EvaluateBudgets(spend map[string]decimal.Decimal, budgets []*entity.Budget) []entity.BudgetInsight {
	insights := make([]entity.BudgetInsight, 0, len(budgets))

	for _, budget := range budgets {
		if budget.Limit.IsNegative() {
			slog.Warn("Skipping malformed budget entry",
				"budget_id", budget.ID,
				"user_id", budget.UserID,
				"category", budget.Category,
				"limit", budget.Limit,
				"code", domainerror.ErrCodeMalformedBudget,
			)
			continue
		}

		spent := spend[budget.Category]
		insight := entity.BudgetInsight{
			Category:  budget.Category,
			Limit:     budget.Limit,
			Spent:     spent,
			Remaining: budget.Limit.Sub(spent),
		}

		if budget.Limit.IsZero() {
			if spent.IsPositive() {
				insight.Status = entity.InsightStatusOver
			} else {
				zero := 0.0
				insight.Percentage = &zero
				insight.Status = entity.InsightStatusUnder
			}
		} else {
			pct, _ := spent.Mul(oneHundred).Div(budget.Limit).Round(2).Float64()
			insight.Percentage = &pct

			switch {
			case spent.GreaterThan(budget.Limit):
				insight.Status = entity.InsightStatusOver
			case spent.GreaterThan(budget.Limit.Mul(nearThreshold)):
				insight.Status = entity.InsightStatusNear
			default:
				insight.Status = entity.InsightStatusUnder
			}
		}

		insights = append(insights, insight)
	}

	return insights
}
