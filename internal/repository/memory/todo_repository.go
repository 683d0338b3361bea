package memory

import (
	"context"
	"sync"
	"time"

	"daytrack/internal/domain"
	"daytrack/internal/repository"
)

// TodoRepository keeps todos in an ordered in-memory slice, scanning linearly
// for id+owner matches.
type TodoRepository struct {
	mu    sync.RWMutex
	todos []domain.Todo
}

func NewTodoRepository() repository.TodoRepository {
	return &TodoRepository{}
}

func (r *TodoRepository) Init(ctx context.Context) error {
	return nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	todo.CreatedAt = now
	todo.UpdatedAt = now
	r.todos = append(r.todos, *todo)
	return nil
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID string) ([]domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := []domain.Todo{}
	for i := range r.todos {
		if r.todos[i].UserID == userID {
			todos = append(todos, r.todos[i])
		}
	}
	return todos, nil
}

func (r *TodoRepository) Update(ctx context.Context, id, userID string, patch domain.TodoPatch) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].ID != id || r.todos[i].UserID != userID {
			continue
		}
		if patch.Title != nil {
			r.todos[i].Title = *patch.Title
		}
		if patch.Description != nil {
			r.todos[i].Description = *patch.Description
		}
		if patch.Completed != nil {
			r.todos[i].Completed = *patch.Completed
		}
		if patch.Priority != nil {
			r.todos[i].Priority = *patch.Priority
		}
		r.todos[i].UpdatedAt = time.Now().UTC()
		todo := r.todos[i]
		return &todo, nil
	}
	return nil, domain.ErrNotFound
}

func (r *TodoRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].ID == id && r.todos[i].UserID == userID {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
