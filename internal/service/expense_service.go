package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"daytrack/internal/domain"
	"daytrack/internal/repository"
)

// ExpenseService coordinates expense operations scoped to the requesting
// user, including the derived summary report.
type ExpenseService interface {
	List(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, error)
	Create(ctx context.Context, userID, title string, amount *float64, category string, date *time.Time, description string) (*domain.Expense, error)
	Update(ctx context.Context, id, userID string, patch domain.ExpensePatch) (*domain.Expense, error)
	Delete(ctx context.Context, id, userID string) error
	Summarize(ctx context.Context, userID string) (*domain.ExpenseSummary, error)
}

type expenseService struct {
	expenses repository.ExpenseRepository
	now      func() time.Time
}

func NewExpenseService(expenses repository.ExpenseRepository) ExpenseService {
	return &expenseService{
		expenses: expenses,
		now:      time.Now,
	}
}

// NewExpenseServiceWithClock allows tests to pin the summary reference
// instant.
func NewExpenseServiceWithClock(expenses repository.ExpenseRepository, now func() time.Time) ExpenseService {
	return &expenseService{expenses: expenses, now: now}
}

func (s *expenseService) List(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	if filter.Category != "" && !domain.ValidCategory(filter.Category) {
		return nil, domain.InvalidInput("Unknown category")
	}
	return s.expenses.ListByUser(ctx, userID, filter)
}

func (s *expenseService) Create(ctx context.Context, userID, title string, amount *float64, category string, date *time.Time, description string) (*domain.Expense, error) {
	if strings.TrimSpace(title) == "" || amount == nil || category == "" {
		return nil, domain.InvalidInput("Title, amount, and category are required")
	}
	if *amount <= 0 {
		return nil, domain.InvalidInput("Amount must be a positive number")
	}
	if !domain.ValidCategory(category) {
		return nil, domain.InvalidInput("Unknown category")
	}

	when := s.now()
	if date != nil {
		when = *date
	}

	expense := &domain.Expense{
		ID:          uuid.NewString(),
		Title:       title,
		Amount:      *amount,
		Category:    category,
		Date:        when,
		Description: description,
		UserID:      userID,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) Update(ctx context.Context, id, userID string, patch domain.ExpensePatch) (*domain.Expense, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.InvalidInput("Title, amount, and category are required")
	}
	if patch.Amount != nil && *patch.Amount <= 0 {
		return nil, domain.InvalidInput("Amount must be a positive number")
	}
	if patch.Category != nil && !domain.ValidCategory(*patch.Category) {
		return nil, domain.InvalidInput("Unknown category")
	}
	return s.expenses.Update(ctx, id, userID, patch)
}

func (s *expenseService) Delete(ctx context.Context, id, userID string) error {
	return s.expenses.Delete(ctx, id, userID)
}

func (s *expenseService) Summarize(ctx context.Context, userID string) (*domain.ExpenseSummary, error) {
	expenses, err := s.expenses.ListByUser(ctx, userID, domain.ExpenseFilter{})
	if err != nil {
		return nil, err
	}
	summary := BuildSummary(expenses, s.now())
	return &summary, nil
}
