package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// ListBillsUseCase handles listing a user's bills.
type ListBillsUseCase struct {
	billRepo adapter.BillRepository
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(billRepo adapter.BillRepository) *ListBillsUseCase {
	return &ListBillsUseCase{billRepo: billRepo}
}

// Execute returns all bills for the given user.
func (uc *ListBillsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error) {
	return uc.billRepo.FindByUser(ctx, userID)
}
