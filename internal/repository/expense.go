package repository

import (
	"context"

	"daytrack/internal/domain"
)

// ExpenseRepository exposes persistence operations for Expense records.
// Listings are ordered newest-first by expense date. Mutations are scoped to
// the owning user; a miss on id+owner yields domain.ErrNotFound.
type ExpenseRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, expense *domain.Expense) error
	ListByUser(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, error)
	Update(ctx context.Context, id, userID string, patch domain.ExpensePatch) (*domain.Expense, error)
	Delete(ctx context.Context, id, userID string) error
}
