// Package summary contains the financial aggregation use cases.
package summary

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

type fakeUserRepository struct {
	users   map[uuid.UUID]*entity.User
	findErr error
}

func newFakeUserRepository(users ...*entity.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	all := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, user)
	}
	return all, nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	findErr      error
}

func (r *fakeTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	matched := make([]*entity.Transaction, 0, len(r.transactions))
	for _, transaction := range r.transactions {
		if transaction.UserID == userID {
			matched = append(matched, transaction)
		}
	}
	return matched, nil
}

func (r *fakeTransactionRepository) FindByUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]*entity.Transaction, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	matched := make([]*entity.Transaction, 0, len(r.transactions))
	for _, transaction := range r.transactions {
		if transaction.UserID != userID {
			continue
		}
		if transaction.Date.Before(start) || !transaction.Date.Before(end) {
			continue
		}
		matched = append(matched, transaction)
		if limit > 0 && len(matched) == limit {
			break
		}
	}
	return matched, nil
}

type fakeBudgetRepository struct {
	budgets []*entity.Budget
	findErr error
}

func (r *fakeBudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	r.budgets = append(r.budgets, budget)
	return nil
}

func (r *fakeBudgetRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	matched := make([]*entity.Budget, 0, len(r.budgets))
	for _, budget := range r.budgets {
		if budget.UserID == userID {
			matched = append(matched, budget)
		}
	}
	return matched, nil
}

type fakeSummaryRepository struct {
	saved   map[uuid.UUID]*entity.FinancialSummary
	saveErr error
	findErr error
}

func newFakeSummaryRepository() *fakeSummaryRepository {
	return &fakeSummaryRepository{saved: make(map[uuid.UUID]*entity.FinancialSummary)}
}

func (r *fakeSummaryRepository) Save(ctx context.Context, userID uuid.UUID, summary *entity.FinancialSummary) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved[userID] = summary
	return nil
}

func (r *fakeSummaryRepository) Find(ctx context.Context, userID uuid.UUID) (*entity.FinancialSummary, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	summary, ok := r.saved[userID]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return summary, nil
}

type fakeSummaryCache struct {
	entries     map[uuid.UUID]*entity.FinancialSummary
	getErr      error
	setErr      error
	invalidated int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: make(map[uuid.UUID]*entity.FinancialSummary)}
}

func (c *fakeSummaryCache) Get(ctx context.Context, userID uuid.UUID) (*entity.FinancialSummary, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[userID], nil
}

func (c *fakeSummaryCache) Set(ctx context.Context, userID uuid.UUID, summary *entity.FinancialSummary) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[userID] = summary
	return nil
}

func (c *fakeSummaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	delete(c.entries, userID)
	c.invalidated++
	return nil
}
