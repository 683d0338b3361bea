package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"daytrack/internal/domain"
	"daytrack/internal/repository"
)

// RepositoryTestSuite exercises the sqlite adapters against an in-memory
// database.
type RepositoryTestSuite struct {
	suite.Suite
	users    repository.UserRepository
	todos    repository.TodoRepository
	expenses repository.ExpenseRepository
	ctx      context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	db, err := Open(":memory:")
	require.NoError(s.T(), err, "open test database")
	s.T().Cleanup(func() { db.Close() })

	s.ctx = context.Background()
	s.users = NewUserRepository(db)
	s.todos = NewTodoRepository(db)
	s.expenses = NewExpenseRepository(db)
	require.NoError(s.T(), s.users.Init(s.ctx))
	require.NoError(s.T(), s.todos.Init(s.ctx))
	require.NoError(s.T(), s.expenses.Init(s.ctx))
}

func (s *RepositoryTestSuite) newTodo(userID, title string) *domain.Todo {
	todo := &domain.Todo{
		ID:       uuid.NewString(),
		Title:    title,
		Priority: domain.PriorityMedium,
		UserID:   userID,
	}
	require.NoError(s.T(), s.todos.Create(s.ctx, todo))
	return todo
}

func (s *RepositoryTestSuite) newExpense(userID, title, category string, amount float64, date time.Time) *domain.Expense {
	expense := &domain.Expense{
		ID:       uuid.NewString(),
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
		UserID:   userID,
	}
	require.NoError(s.T(), s.expenses.Create(s.ctx, expense))
	return expense
}

func (s *RepositoryTestSuite) TestUserRoundTrip() {
	user := &domain.User{
		ID:        uuid.NewString(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
	require.NoError(s.T(), s.users.Create(s.ctx, user))

	byEmail, err := s.users.GetByEmail(s.ctx, "ada@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), user.ID, byEmail.ID)

	byID, err := s.users.GetByID(s.ctx, user.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "ada@example.com", byID.Email)

	_, err = s.users.GetByEmail(s.ctx, "nobody@example.com")
	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))
}

func (s *RepositoryTestSuite) TestUserDuplicateEmail() {
	user := &domain.User{ID: uuid.NewString(), FirstName: "A", LastName: "B", Email: "dup@example.com"}
	require.NoError(s.T(), s.users.Create(s.ctx, user))

	dup := &domain.User{ID: uuid.NewString(), FirstName: "C", LastName: "D", Email: "dup@example.com"}
	err := s.users.Create(s.ctx, dup)
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "already exists")
}

func (s *RepositoryTestSuite) TestTodoPartialUpdate() {
	todo := s.newTodo("user-1", "Buy milk")

	completed := true
	updated, err := s.todos.Update(s.ctx, todo.ID, "user-1", domain.TodoPatch{Completed: &completed})
	require.NoError(s.T(), err)

	assert.True(s.T(), updated.Completed)
	assert.Equal(s.T(), "Buy milk", updated.Title)
	assert.Equal(s.T(), domain.PriorityMedium, updated.Priority)
}

func (s *RepositoryTestSuite) TestTodoOwnerScoping() {
	todo := s.newTodo("user-1", "Buy milk")

	title := "hijack"
	_, err := s.todos.Update(s.ctx, todo.ID, "user-2", domain.TodoPatch{Title: &title})
	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))

	err = s.todos.Delete(s.ctx, todo.ID, "user-2")
	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))

	list, err := s.todos.ListByUser(s.ctx, "user-2")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), list)
}

func (s *RepositoryTestSuite) TestExpenseListNewestFirst() {
	base := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	s.newExpense("user-1", "Oldest", "Food", 10, base)
	s.newExpense("user-1", "Newest", "Food", 20, base.AddDate(0, 0, 3))
	s.newExpense("user-1", "Middle", "Bills", 30, base.AddDate(0, 0, 1))

	list, err := s.expenses.ListByUser(s.ctx, "user-1", domain.ExpenseFilter{})
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 3)
	assert.Equal(s.T(), "Newest", list[0].Title)
	assert.Equal(s.T(), "Middle", list[1].Title)
	assert.Equal(s.T(), "Oldest", list[2].Title)
}

func (s *RepositoryTestSuite) TestExpenseFilter() {
	base := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	s.newExpense("user-1", "Groceries", "Food", 10, base)
	s.newExpense("user-1", "Train", "Transportation", 20, base.AddDate(0, 0, 2))
	s.newExpense("user-1", "Dinner", "Food", 30, base.AddDate(0, 0, 5))

	food, err := s.expenses.ListByUser(s.ctx, "user-1", domain.ExpenseFilter{Category: "Food"})
	require.NoError(s.T(), err)
	assert.Len(s.T(), food, 2)

	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 3)
	ranged, err := s.expenses.ListByUser(s.ctx, "user-1", domain.ExpenseFilter{StartDate: &from, EndDate: &to})
	require.NoError(s.T(), err)
	require.Len(s.T(), ranged, 1)
	assert.Equal(s.T(), "Train", ranged[0].Title)
}

func (s *RepositoryTestSuite) TestExpensePartialUpdate() {
	base := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	expense := s.newExpense("user-1", "Lunch", "Food", 10, base)

	amount := 12.5
	updated, err := s.expenses.Update(s.ctx, expense.ID, "user-1", domain.ExpensePatch{Amount: &amount})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 12.5, updated.Amount)
	assert.Equal(s.T(), "Lunch", updated.Title)
	assert.Equal(s.T(), "Food", updated.Category)
}

func (s *RepositoryTestSuite) TestExpenseDelete() {
	base := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	expense := s.newExpense("user-1", "Lunch", "Food", 10, base)

	require.NoError(s.T(), s.expenses.Delete(s.ctx, expense.ID, "user-1"))
	err := s.expenses.Delete(s.ctx, expense.ID, "user-1")
	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
