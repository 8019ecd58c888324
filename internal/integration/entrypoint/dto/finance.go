package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the transaction creation request body.
// Amount carries no required tag since zero-amount transactions are valid.
type CreateTransactionRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Category    string          `json:"category" binding:"required"`
	Date        time.Time       `json:"date"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TransactionResponseFromEntity converts a transaction entity to its API
// representation.
func TransactionResponseFromEntity(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID.String(),
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		Category:    transaction.Category,
		Date:        transaction.Date,
		CreatedAt:   transaction.CreatedAt,
	}
}

// CreateBudgetRequest represents the budget creation request body. A zero
// limit is accepted and treated as a sentinel by the insight evaluator.
type CreateBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Limit    decimal.Decimal `json:"limit"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Limit     decimal.Decimal `json:"limit"`
	CreatedAt time.Time       `json:"createdAt"`
}

// BudgetResponseFromEntity converts a budget entity to its API representation.
func BudgetResponseFromEntity(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Category:  budget.Category,
		Limit:     budget.Limit,
		CreatedAt: budget.CreatedAt,
	}
}

// CreateBillRequest represents the bill creation request body.
type CreateBillRequest struct {
	Name          string          `json:"name" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"dueDate" binding:"required"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
}

// BillResponse represents a bill in API responses.
type BillResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"dueDate"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Paid          bool            `json:"paid"`
	ReminderSent  bool            `json:"reminderSent"`
}

// BillResponseFromEntity converts a bill entity to its API representation.
func BillResponseFromEntity(bill *entity.Bill) BillResponse {
	return BillResponse{
		ID:            bill.ID.String(),
		Name:          bill.Name,
		Amount:        bill.Amount,
		DueDate:       bill.DueDate,
		Category:      bill.Category,
		PaymentMethod: bill.PaymentMethod,
		Paid:          bill.Paid,
		ReminderSent:  bill.ReminderSent,
	}
}
