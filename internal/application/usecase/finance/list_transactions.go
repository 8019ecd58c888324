package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// ListTransactionsUseCase handles listing a user's transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute returns all transactions for the given user.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return uc.transactionRepo.FindByUser(ctx, userID)
}
