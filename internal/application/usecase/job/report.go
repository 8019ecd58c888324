// Package job contains the recurring batch jobs driven by the scheduler.
package job

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// digestDateFormat renders dates the way report emails present them ("May 3, 2024").
const digestDateFormat = "Jan 2, 2006"

// monthlyReportBody builds the plain-text body of a monthly report email.
func monthlyReportBody(income, expenses, savings decimal.Decimal, transactionCount int) string {
	var b strings.Builder
	b.WriteString("Monthly Financial Report\n\n")
	fmt.Fprintf(&b, "Income: $%s\n", income.StringFixed(2))
	fmt.Fprintf(&b, "Expenses: $%s\n", expenses.StringFixed(2))
	fmt.Fprintf(&b, "Savings: $%s\n", savings.StringFixed(2))
	fmt.Fprintf(&b, "Transactions: %d", transactionCount)
	return b.String()
}

// weeklyDigestBody builds the plain-text body of a weekly digest email,
// ending with the most recent transactions verbatim.
func weeklyDigestBody(weekStart, weekEnd time.Time, income, expenses, net decimal.Decimal, transactionCount int, recent []*entity.Transaction) string {
	var b strings.Builder
	b.WriteString("Weekly Financial Digest\n\n")
	fmt.Fprintf(&b, "Period: %s to %s\n", weekStart.Format(digestDateFormat), weekEnd.Format(digestDateFormat))
	fmt.Fprintf(&b, "Transactions: %d\n", transactionCount)
	fmt.Fprintf(&b, "Income: $%s\n", income.StringFixed(2))
	fmt.Fprintf(&b, "Expenses: $%s\n", expenses.StringFixed(2))
	fmt.Fprintf(&b, "Net: $%s", net.StringFixed(2))

	if len(recent) > 0 {
		b.WriteString("\n\nRecent transactions:\n")
		for _, tx := range recent {
			fmt.Fprintf(&b, "- %s: %s $%s (%s)\n",
				tx.Date.Format(digestDateFormat),
				tx.Description,
				tx.Amount.Abs().StringFixed(2),
				tx.Category,
			)
		}
	}

	return b.String()
}

// windowTotals sums a fetched transaction window into income and expense
// totals, expenses by absolute value.
func windowTotals(transactions []*entity.Transaction) (income, expenses decimal.Decimal) {
	for _, tx := range transactions {
		switch tx.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			expenses = expenses.Add(tx.Amount.Abs())
		}
	}
	return income, expenses
}
