package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"daytrack/internal/domain"
	"daytrack/internal/repository"
)

// TodoService coordinates todo operations scoped to the requesting user.
type TodoService interface {
	List(ctx context.Context, userID string) ([]domain.Todo, error)
	Create(ctx context.Context, userID, title, description string, priority domain.Priority) (*domain.Todo, error)
	Update(ctx context.Context, id, userID string, patch domain.TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, id, userID string) error
}

type todoService struct {
	todos repository.TodoRepository
}

func NewTodoService(todos repository.TodoRepository) TodoService {
	return &todoService{todos: todos}
}

func (s *todoService) List(ctx context.Context, userID string) ([]domain.Todo, error) {
	return s.todos.ListByUser(ctx, userID)
}

func (s *todoService) Create(ctx context.Context, userID, title, description string, priority domain.Priority) (*domain.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.InvalidInput("Title is required")
	}
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, domain.InvalidInput("Priority must be low, medium, or high")
	}

	todo := &domain.Todo{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Completed:   false,
		Priority:    priority,
		UserID:      userID,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Update(ctx context.Context, id, userID string, patch domain.TodoPatch) (*domain.Todo, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.InvalidInput("Title is required")
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, domain.InvalidInput("Priority must be low, medium, or high")
	}
	return s.todos.Update(ctx, id, userID, patch)
}

func (s *todoService) Delete(ctx context.Context, id, userID string) error {
	return s.todos.Delete(ctx, id, userID)
}
