package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"daytrack/internal/domain"
	"daytrack/internal/repository"
)

const createExpensesTable = `
CREATE TABLE IF NOT EXISTS expenses (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	amount REAL NOT NULL,
	category TEXT NOT NULL,
	date DATETIME NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	user_id TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_expenses_user_id ON expenses(user_id);
`

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createExpensesTable); err != nil {
		return fmt.Errorf("create expenses table: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO expenses (id, title, amount, category, date, description, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID,
		expense.Title,
		expense.Amount,
		expense.Category,
		expense.Date.UTC(),
		expense.Description,
		expense.UserID,
		expense.CreatedAt,
		expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) ListByUser(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	where := []string{"user_id = ?"}
	args := []any{userID}
	if filter.StartDate != nil {
		where = append(where, "date >= ?")
		args = append(args, filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		where = append(where, "date <= ?")
		args = append(args, filter.EndDate.UTC())
	}
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}

	query := fmt.Sprintf(`
SELECT id, title, amount, category, date, description, user_id, created_at, updated_at
FROM expenses
WHERE %s
ORDER BY date DESC`, strings.Join(where, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *expense)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) Update(ctx context.Context, id, userID string, patch domain.ExpensePatch) (*domain.Expense, error) {
	sets := []string{}
	args := []any{}
	if patch.Title != nil {
		sets = append(sets, "title=?")
		args = append(args, *patch.Title)
	}
	if patch.Amount != nil {
		sets = append(sets, "amount=?")
		args = append(args, *patch.Amount)
	}
	if patch.Category != nil {
		sets = append(sets, "category=?")
		args = append(args, *patch.Category)
	}
	if patch.Date != nil {
		sets = append(sets, "date=?")
		args = append(args, patch.Date.UTC())
	}
	if patch.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *patch.Description)
	}
	sets = append(sets, "updated_at=?")
	args = append(args, time.Now().UTC())
	args = append(args, id, userID)

	query := fmt.Sprintf(`UPDATE expenses SET %s WHERE id=? AND user_id=?`, strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("expense update rows affected: %w", err)
	}
	if aff == 0 {
		return nil, domain.ErrNotFound
	}

	return r.get(ctx, id, userID)
}

func (r *ExpenseRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("expense delete rows affected: %w", err)
	}
	if aff == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepository) get(ctx context.Context, id, userID string) (*domain.Expense, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, amount, category, date, description, user_id, created_at, updated_at
FROM expenses
WHERE id=? AND user_id=?`,
		id, userID,
	)
	return scanExpense(row)
}

func scanExpense(scanner interface {
	Scan(dest ...any) error
}) (*domain.Expense, error) {
	var expense domain.Expense
	if err := scanner.Scan(
		&expense.ID,
		&expense.Title,
		&expense.Amount,
		&expense.Category,
		&expense.Date,
		&expense.Description,
		&expense.UserID,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan expense: %w", err)
	}
	return &expense, nil
}
