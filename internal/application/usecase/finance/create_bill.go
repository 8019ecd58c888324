package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// CreateBillInput represents the input for creating a bill.
type CreateBillInput struct {
	UserID        uuid.UUID
	Name          string
	Amount        decimal.Decimal
	DueDate       time.Time
	Category      string
	PaymentMethod string
}

// CreateBillUseCase handles bill creation.
type CreateBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewCreateBillUseCase creates a new CreateBillUseCase instance.
func NewCreateBillUseCase(billRepo adapter.BillRepository) *CreateBillUseCase {
	return &CreateBillUseCase{billRepo: billRepo}
}

// Execute stores a new bill. Bills without a category fall back to the
// default category.
func (uc *CreateBillUseCase) Execute(ctx context.Context, input CreateBillInput) (*entity.Bill, error) {
	bill := entity.NewBill(input.UserID, input.Name, input.Amount, input.DueDate, input.Category, input.PaymentMethod)
	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}
