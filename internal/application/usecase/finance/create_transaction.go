// Package finance contains use cases for transactions, budgets and bills.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for creating a transaction.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Type        string
	Category    string
	Date        time.Time
}

// CreateTransactionUseCase handles transaction creation.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.SummaryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, cache adapter.SummaryCache) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{transactionRepo: transactionRepo, cache: cache}
}

// Execute validates and stores a new transaction. A stored transaction makes
// any cached summary stale, so the cache entry is dropped as well.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error) {
	transactionType := entity.TransactionType(input.Type)
	if transactionType != entity.TransactionTypeIncome && transactionType != entity.TransactionTypeExpense {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("invalid transaction type: %s", input.Type),
			domainerror.ErrInvalidTransactionType,
		)
	}

	transaction := entity.NewTransaction(input.UserID, input.Description, input.Amount, transactionType, input.Category, input.Date)
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, input.UserID)
	}

	return transaction, nil
}
