package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"daytrack/internal/domain"
	"daytrack/internal/repository"
)

// ExpenseRepository keeps expenses in an ordered in-memory slice, scanning
// linearly for id+owner matches. Listings are returned newest-first by date.
type ExpenseRepository struct {
	mu       sync.RWMutex
	expenses []domain.Expense
}

func NewExpenseRepository() repository.ExpenseRepository {
	return &ExpenseRepository{}
}

func (r *ExpenseRepository) Init(ctx context.Context) error {
	return nil
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now
	r.expenses = append(r.expenses, *expense)
	return nil
}

func (r *ExpenseRepository) ListByUser(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	expenses := []domain.Expense{}
	for i := range r.expenses {
		e := r.expenses[i]
		if e.UserID != userID {
			continue
		}
		if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		expenses = append(expenses, e)
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, id, userID string, patch domain.ExpensePatch) (*domain.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.expenses {
		if r.expenses[i].ID != id || r.expenses[i].UserID != userID {
			continue
		}
		if patch.Title != nil {
			r.expenses[i].Title = *patch.Title
		}
		if patch.Amount != nil {
			r.expenses[i].Amount = *patch.Amount
		}
		if patch.Category != nil {
			r.expenses[i].Category = *patch.Category
		}
		if patch.Date != nil {
			r.expenses[i].Date = *patch.Date
		}
		if patch.Description != nil {
			r.expenses[i].Description = *patch.Description
		}
		r.expenses[i].UpdatedAt = time.Now().UTC()
		expense := r.expenses[i]
		return &expense, nil
	}
	return nil, domain.ErrNotFound
}

func (r *ExpenseRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.expenses {
		if r.expenses[i].ID == id && r.expenses[i].UserID == userID {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
