// Package summary contains the financial aggregation use cases.
package summary

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

func newTestBudget(category, limit string) *entity.Budget {
	return &entity.Budget{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Category: category,
		Limit:    decimal.RequireFromString(limit),
	}
}

func spendOf(pairs map[string]string) map[string]decimal.Decimal {
	spend := make(map[string]decimal.Decimal, len(pairs))
	for category, amount := range pairs {
		spend[category] = decimal.RequireFromString(amount)
	}
	return spend
}

func TestEvaluateBudgets(t *testing.T) {
	t.Run("one insight per budget, unbudgeted categories ignored", func(t *testing.T) {
		spend := spendOf(map[string]string{"Groceries": "45.99", "Utilities": "120"})
		insights := EvaluateBudgets(spend, []*entity.Budget{newTestBudget("Groceries", "500")})

		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(insights))
		}

		insight := insights[0]
		if insight.Category != "Groceries" {
			t.Errorf("expected category Groceries, got %s", insight.Category)
		}
		if !insight.Spent.Equal(decimal.RequireFromString("45.99")) {
			t.Errorf("expected spent 45.99, got %s", insight.Spent)
		}
		if !insight.Remaining.Equal(decimal.RequireFromString("454.01")) {
			t.Errorf("expected remaining 454.01, got %s", insight.Remaining)
		}
		if insight.Percentage == nil || *insight.Percentage != 9.2 {
			t.Errorf("expected percentage 9.2, got %v", insight.Percentage)
		}
		if insight.Status != entity.InsightStatusUnder {
			t.Errorf("expected status under, got %s", insight.Status)
		}
	})

	t.Run("budget with no recorded spend evaluates at zero", func(t *testing.T) {
		insights := EvaluateBudgets(nil, []*entity.Budget{newTestBudget("Travel", "300")})

		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(insights))
		}
		if !insights[0].Spent.IsZero() {
			t.Errorf("expected zero spent, got %s", insights[0].Spent)
		}
		if !insights[0].Remaining.Equal(decimal.RequireFromString("300")) {
			t.Errorf("expected remaining 300, got %s", insights[0].Remaining)
		}
		if insights[0].Status != entity.InsightStatusUnder {
			t.Errorf("expected status under, got %s", insights[0].Status)
		}
	})

	t.Run("status thresholds", func(t *testing.T) {
		cases := []struct {
			name   string
			spent  string
			limit  string
			status entity.InsightStatus
		}{
			{"well under", "50", "100", entity.InsightStatusUnder},
			{"exactly at eighty percent", "80", "100", entity.InsightStatusUnder},
			{"just above eighty percent", "80.01", "100", entity.InsightStatusNear},
			{"exactly at limit", "100", "100", entity.InsightStatusNear},
			{"just above limit", "100.01", "100", entity.InsightStatusOver},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				spend := spendOf(map[string]string{"Groceries": tc.spent})
				insights := EvaluateBudgets(spend, []*entity.Budget{newTestBudget("Groceries", tc.limit)})

				if len(insights) != 1 {
					t.Fatalf("expected 1 insight, got %d", len(insights))
				}
				if insights[0].Status != tc.status {
					t.Errorf("spent %s of %s: expected %s, got %s", tc.spent, tc.limit, tc.status, insights[0].Status)
				}
			})
		}
	})

	t.Run("zero limit with spend is over with undefined percentage", func(t *testing.T) {
		spend := spendOf(map[string]string{"Dining": "10"})
		insights := EvaluateBudgets(spend, []*entity.Budget{newTestBudget("Dining", "0")})

		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(insights))
		}
		if insights[0].Status != entity.InsightStatusOver {
			t.Errorf("expected status over, got %s", insights[0].Status)
		}
		if insights[0].Percentage != nil {
			t.Errorf("expected nil percentage, got %v", *insights[0].Percentage)
		}
	})

	t.Run("zero limit without spend is under at zero percent", func(t *testing.T) {
		insights := EvaluateBudgets(nil, []*entity.Budget{newTestBudget("Dining", "0")})

		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(insights))
		}
		if insights[0].Status != entity.InsightStatusUnder {
			t.Errorf("expected status under, got %s", insights[0].Status)
		}
		if insights[0].Percentage == nil || *insights[0].Percentage != 0 {
			t.Errorf("expected percentage 0, got %v", insights[0].Percentage)
		}
	})

	t.Run("negative limit rows are skipped", func(t *testing.T) {
		insights := EvaluateBudgets(nil, []*entity.Budget{
			newTestBudget("Broken", "-5"),
			newTestBudget("Groceries", "500"),
		})

		if len(insights) != 1 {
			t.Fatalf("expected malformed row to be skipped, got %d insights", len(insights))
		}
		if insights[0].Category != "Groceries" {
			t.Errorf("expected surviving insight for Groceries, got %s", insights[0].Category)
		}
	})

	t.Run("duplicate budget rows each produce an insight", func(t *testing.T) {
		spend := spendOf(map[string]string{"Groceries": "90"})
		insights := EvaluateBudgets(spend, []*entity.Budget{
			newTestBudget("Groceries", "100"),
			newTestBudget("Groceries", "50"),
		})

		if len(insights) != 2 {
			t.Fatalf("expected 2 insights, got %d", len(insights))
		}
		if insights[0].Status != entity.InsightStatusNear {
			t.Errorf("expected first insight near, got %s", insights[0].Status)
		}
		if insights[1].Status != entity.InsightStatusOver {
			t.Errorf("expected second insight over, got %s", insights[1].Status)
		}
	})
}
