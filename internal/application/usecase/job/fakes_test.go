// Package job contains the recurring batch jobs driven by the scheduler.
package job

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
)

type fakeBillRepository struct {
	due     []*entity.BillWithOwner
	dueErr  error
	updated map[uuid.UUID]*entity.Bill
	updErr  map[uuid.UUID]error
}

func newFakeBillRepository(due ...*entity.BillWithOwner) *fakeBillRepository {
	return &fakeBillRepository{
		due:     due,
		updated: make(map[uuid.UUID]*entity.Bill),
		updErr:  make(map[uuid.UUID]error),
	}
}

func (r *fakeBillRepository) Create(ctx context.Context, bill *entity.Bill) error { return nil }

func (r *fakeBillRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error) {
	return nil, nil
}

func (r *fakeBillRepository) FindDueForReminder(ctx context.Context, dueBefore time.Time) ([]*entity.BillWithOwner, error) {
	if r.dueErr != nil {
		return nil, r.dueErr
	}
	matched := make([]*entity.BillWithOwner, 0, len(r.due))
	for _, item := range r.due {
		if !item.Bill.DueDate.After(dueBefore) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (r *fakeBillRepository) Update(ctx context.Context, bill *entity.Bill) error {
	if err, ok := r.updErr[bill.ID]; ok {
		return err
	}
	r.updated[bill.ID] = bill
	return nil
}

type fakeUserRepository struct {
	users   []*entity.User
	findErr error
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.users, nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	findErrFor   map[uuid.UUID]error
}

func newFakeTransactionRepository(transactions ...*entity.Transaction) *fakeTransactionRepository {
	return &fakeTransactionRepository{
		transactions: transactions,
		findErrFor:   make(map[uuid.UUID]error),
	}
}

func (r *fakeTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}

// FindByUserInRange mirrors the SQL implementation: most recent first,
// half-open window, optional limit.
func (r *fakeTransactionRepository) FindByUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]*entity.Transaction, error) {
	if err, ok := r.findErrFor[userID]; ok {
		return nil, err
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
	}

	for i := 0; i < len(matched); i++ {
		for k := i + 1; k < len(matched); k++ {
			if matched[k].Date.After(matched[i].Date) {
				matched[i], matched[k] = matched[k], matched[i]
			}
		}
	}

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

type fakeDeviceRepository struct {
	pruned   int64
	pruneErr error
	lastSeen time.Time
}

func (r *fakeDeviceRepository) Register(ctx context.Context, device *entity.Device) error { return nil }

func (r *fakeDeviceRepository) Remove(ctx context.Context, userID uuid.UUID, token string) error {
	return nil
}

func (r *fakeDeviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	return nil, nil
}

func (r *fakeDeviceRepository) PruneInactive(ctx context.Context, threshold time.Time) (int64, error) {
	if r.pruneErr != nil {
		return 0, r.pruneErr
	}
	r.lastSeen = threshold
	return r.pruned, nil
}
