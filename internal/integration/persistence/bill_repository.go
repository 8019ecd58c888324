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

// billRepository implements the adapter.BillRepository interface.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository instance.
func NewBillRepository(db *gorm.DB) adapter.BillRepository {
	return &billRepository{
		db: db,
	}
}

// Create stores a new bill.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	billModel := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves every bill owned by the user, soonest due first.
func (r *billRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error) {
	var billModels []model.BillModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.Bill, 0, len(billModels))
	for i := range billModels {
		bills = append(bills, billModels[i].ToEntity())
	}
	return bills, nil
}

// FindDueForReminder retrieves unpaid bills due on or before the given time
// whose reminder has not been sent, joined with their owners.
func (r *billRepository) FindDueForReminder(ctx context.Context, dueBefore time.Time) ([]*entity.BillWithOwner, error) {
	var billModels []model.BillModel
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("due_date <= ? AND paid = ? AND reminder_sent = ?", dueBefore, false, false).
		Order("due_date ASC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.BillWithOwner, 0, len(billModels))
	for i := range billModels {
		bills = append(bills, billModels[i].ToEntityWithOwner())
	}
	return bills, nil
}

// Update persists changes to an existing bill.
func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	billModel := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Save(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
