package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// ListBudgetsUseCase handles listing a user's budgets.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{budgetRepo: budgetRepo}
}

// Execute returns all budgets for the given user.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return uc.budgetRepo.FindByUser(ctx, userID)
}
