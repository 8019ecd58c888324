// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	"github.com/pennyflow/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create stores a new transaction.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(txModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves every transaction owned by the user. The fetch order
// is incidental; the aggregation layer sorts by ID before folding.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var txModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&txModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(txModels), nil
}

// FindByUserInRange retrieves the user's transactions with a date inside
// [start, end), most recent first. A limit of 0 means no limit.
func (r *transactionRepository) FindByUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var txModels []model.TransactionModel
	result := query.Find(&txModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(txModels), nil
}

// toTransactionEntities maps transaction models to domain entities.
func toTransactionEntities(txModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, txModels[i].ToEntity())
	}
	return transactions
}
