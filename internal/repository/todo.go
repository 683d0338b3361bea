package repository

import (
	"context"

	"daytrack/internal/domain"
)

// TodoRepository exposes persistence operations for Todo records. Every
// mutation is scoped to the owning user; a miss on id+owner yields
// domain.ErrNotFound.
type TodoRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, todo *domain.Todo) error
	ListByUser(ctx context.Context, userID string) ([]domain.Todo, error)
	Update(ctx context.Context, id, userID string, patch domain.TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, id, userID string) error
}
