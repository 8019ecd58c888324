package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for creating a budget.
type CreateBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Limit    decimal.Decimal
}

// CreateBudgetUseCase handles budget creation.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.SummaryCache
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, cache adapter.SummaryCache) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{budgetRepo: budgetRepo, cache: cache}
}

// Execute validates and stores a new budget.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*entity.Budget, error) {
	if input.Limit.IsNegative() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeNegativeBudgetLimit,
			fmt.Sprintf("budget limit must not be negative: %s", input.Limit),
			domainerror.ErrNegativeBudgetLimit,
		)
	}

	budget := entity.NewBudget(input.UserID, input.Category, input.Limit)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, input.UserID)
	}

	return budget, nil
}
