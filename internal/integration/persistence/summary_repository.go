// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/persistence/model"
)

// summaryRepository implements the adapter.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository instance.
func NewSummaryRepository(db *gorm.DB) adapter.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

// Save overwrites the user's financial summary with the given snapshot.
func (r *summaryRepository) Save(ctx context.Context, userID uuid.UUID, summary *entity.FinancialSummary) error {
	summaryModel := model.SummaryFromEntity(userID, summary)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(summaryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Find retrieves the user's persisted summary.
func (r *summaryRepository) Find(ctx context.Context, userID uuid.UUID) (*entity.FinancialSummary, error) {
	var summaryModel model.FinancialSummaryModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&summaryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return summaryModel.ToEntity(), nil
}
