package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daytrack/internal/domain"
)

func TestUserRepository_DuplicateEmail(t *testing.T) {
	users := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &domain.User{ID: "u1", Email: "dup@example.com"}))
	err := users.Create(ctx, &domain.User{ID: "u2", Email: "dup@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestTodoRepository_ConcurrentCreates(t *testing.T) {
	todos := NewTodoRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			todo := &domain.Todo{
				ID:       uuid.NewString(),
				Title:    fmt.Sprintf("todo-%d", i),
				Priority: domain.PriorityMedium,
				UserID:   "user-1",
			}
			assert.NoError(t, todos.Create(ctx, todo))
		}(i)
	}
	wg.Wait()

	list, err := todos.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

func TestExpenseRepository_ListCopiesRecords(t *testing.T) {
	expenses := NewExpenseRepository()
	ctx := context.Background()

	expense := &domain.Expense{
		ID:       uuid.NewString(),
		Title:    "Lunch",
		Amount:   10,
		Category: "Food",
		Date:     time.Now(),
		UserID:   "user-1",
	}
	require.NoError(t, expenses.Create(ctx, expense))

	list, err := expenses.ListByUser(ctx, "user-1", domain.ExpenseFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	// Mutating the returned slice must not leak into the store.
	list[0].Amount = 999

	again, err := expenses.ListByUser(ctx, "user-1", domain.ExpenseFilter{})
	require.NoError(t, err)
	assert.Equal(t, 10.0, again[0].Amount)
}
