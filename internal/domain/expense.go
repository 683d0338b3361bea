package domain

import "time"

// Categories is the fixed set of expense categories.
var Categories = []string{
	"Food",
	"Transportation",
	"Entertainment",
	"Shopping",
	"Bills",
	"Healthcare",
	"Office",
	"Travel",
	"Other",
}

// ValidCategory reports whether name is one of the known expense categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Expense is a single ledger entry owned by exactly one user.
type Expense struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ExpensePatch carries the fields of a partial expense update. Nil fields
// keep their prior values.
type ExpensePatch struct {
	Title       *string
	Amount      *float64
	Category    *string
	Date        *time.Time
	Description *string
}

// ExpenseFilter narrows an owner-scoped expense listing.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

// DayTotal is one calendar day of the weekly breakdown.
type DayTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// WeekTotal is one week bucket of the monthly breakdown.
type WeekTotal struct {
	Week      int     `json:"week"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Total     float64 `json:"total"`
	Count     int     `json:"count"`
}

// ExpenseSummary is the derived report over a user's full expense set. It is
// recomputed on every request and never persisted.
type ExpenseSummary struct {
	TotalExpenses    float64            `json:"totalExpenses"`
	WeeklyTotal      float64            `json:"weeklyTotal"`
	MonthlyTotal     float64            `json:"monthlyTotal"`
	CategoryTotals   map[string]float64 `json:"categoryTotals"`
	WeeklyBreakdown  []DayTotal         `json:"weeklyBreakdown"`
	MonthlyBreakdown []WeekTotal        `json:"monthlyBreakdown"`
	TotalCount       int                `json:"totalCount"`
	WeeklyCount      int                `json:"weeklyCount"`
	MonthlyCount     int                `json:"monthlyCount"`
}
