package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daytrack/internal/domain"
)

func expenseOn(date time.Time, amount float64, category string) domain.Expense {
	return domain.Expense{
		ID:       "e-" + date.Format("20060102-150405.000"),
		Title:    "test",
		Amount:   amount,
		Category: category,
		Date:     date,
		UserID:   "user_123",
	}
}

func TestBuildSummary_Scenario(t *testing.T) {
	// Wednesday mid-month, so both days fall in the current week and month.
	now := time.Date(2025, time.June, 18, 15, 0, 0, 0, time.Local)
	expenses := []domain.Expense{
		expenseOn(now, 25.50, "Food"),
		expenseOn(now.AddDate(0, 0, -1), 45.00, "Transportation"),
	}

	s := BuildSummary(expenses, now)

	assert.Equal(t, 70.50, s.TotalExpenses)
	assert.Equal(t, 70.50, s.WeeklyTotal)
	assert.Equal(t, 70.50, s.MonthlyTotal)
	assert.Equal(t, map[string]float64{
		"Food":           25.50,
		"Transportation": 45.00,
	}, s.CategoryTotals)
	assert.Equal(t, 2, s.TotalCount)
	assert.Equal(t, 2, s.WeeklyCount)
	assert.Equal(t, 2, s.MonthlyCount)
}

func TestBuildSummary_WeekStartsOnSunday(t *testing.T) {
	// 2025-06-18 is a Wednesday; the week starts Sunday 2025-06-15.
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	expenses := []domain.Expense{
		expenseOn(time.Date(2025, time.June, 15, 8, 0, 0, 0, time.Local), 10, "Food"),
		expenseOn(time.Date(2025, time.June, 14, 23, 0, 0, 0, time.Local), 20, "Food"), // Saturday, prior week
	}

	s := BuildSummary(expenses, now)

	assert.Equal(t, 10.0, s.WeeklyTotal)
	assert.Equal(t, 1, s.WeeklyCount)
	assert.Equal(t, 30.0, s.MonthlyTotal)
	assert.Equal(t, 2, s.MonthlyCount)
	// Category totals cover the entire set regardless of scope.
	assert.Equal(t, 30.0, s.CategoryTotals["Food"])
}

func TestBuildSummary_WeeklyBreakdown(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	sunday := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local)
	expenses := []domain.Expense{
		expenseOn(sunday.Add(9*time.Hour), 5.25, "Food"),
		expenseOn(sunday.Add(10*time.Hour), 4.75, "Food"),
		expenseOn(sunday.AddDate(0, 0, 2).Add(20*time.Hour), 12.00, "Bills"),
	}

	s := BuildSummary(expenses, now)

	require.Len(t, s.WeeklyBreakdown, 7)
	assert.Equal(t, "2025-06-15", s.WeeklyBreakdown[0].Date)
	assert.Equal(t, 10.0, s.WeeklyBreakdown[0].Total)
	assert.Equal(t, 2, s.WeeklyBreakdown[0].Count)
	assert.Equal(t, 12.0, s.WeeklyBreakdown[2].Total)
	assert.Equal(t, 1, s.WeeklyBreakdown[2].Count)
	for _, i := range []int{1, 3, 4, 5, 6} {
		assert.Zero(t, s.WeeklyBreakdown[i].Total)
		assert.Zero(t, s.WeeklyBreakdown[i].Count)
	}

	var sum float64
	for _, day := range s.WeeklyBreakdown {
		sum += day.Total
	}
	assert.InDelta(t, s.WeeklyTotal, sum, 0.01)
}

func TestBuildSummary_MonthlyBuckets(t *testing.T) {
	// June 2025 begins on a Sunday, so buckets align with calendar weeks and
	// ceil((18+0)/7) = 3 buckets.
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	expenses := []domain.Expense{
		expenseOn(time.Date(2025, time.June, 2, 10, 0, 0, 0, time.Local), 100, "Bills"),
		expenseOn(time.Date(2025, time.June, 9, 10, 0, 0, 0, time.Local), 50, "Bills"),
		expenseOn(time.Date(2025, time.June, 16, 10, 0, 0, 0, time.Local), 25, "Bills"),
	}

	s := BuildSummary(expenses, now)

	require.Len(t, s.MonthlyBreakdown, 3)
	assert.Equal(t, 1, s.MonthlyBreakdown[0].Week)
	assert.Equal(t, "2025-06-01", s.MonthlyBreakdown[0].StartDate)
	assert.Equal(t, "2025-06-07", s.MonthlyBreakdown[0].EndDate)
	assert.Equal(t, 100.0, s.MonthlyBreakdown[0].Total)
	assert.Equal(t, 50.0, s.MonthlyBreakdown[1].Total)
	assert.Equal(t, 25.0, s.MonthlyBreakdown[2].Total)
	for _, w := range s.MonthlyBreakdown {
		assert.Equal(t, 1, w.Count)
	}
}

func TestBuildSummary_MonthlyBucketsAnchoredBeforeFirst(t *testing.T) {
	// July 2025 begins on a Tuesday (weekday 2): bucket 0 starts two days
	// before the 1st and ceil((10+2)/7) = 2 buckets.
	now := time.Date(2025, time.July, 10, 12, 0, 0, 0, time.Local)

	s := BuildSummary(nil, now)

	require.Len(t, s.MonthlyBreakdown, 2)
	assert.Equal(t, "2025-06-29", s.MonthlyBreakdown[0].StartDate)
	assert.Equal(t, "2025-07-05", s.MonthlyBreakdown[0].EndDate)
	assert.Equal(t, "2025-07-06", s.MonthlyBreakdown[1].StartDate)
	assert.Equal(t, "2025-07-12", s.MonthlyBreakdown[1].EndDate)
}

func TestBuildSummary_CategoryTotalsMatchTotal(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	expenses := []domain.Expense{
		expenseOn(now, 10.004, "Food"),
		expenseOn(now.AddDate(0, 0, -40), 19.996, "Travel"),
		expenseOn(now.AddDate(0, -2, 0), 33.333, "Other"),
	}

	s := BuildSummary(expenses, now)

	var sum float64
	for _, total := range s.CategoryTotals {
		sum += total
	}
	assert.InDelta(t, s.TotalExpenses, sum, 0.01)
}

func TestBuildSummary_RoundsHalfAwayFromZero(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)
	expenses := []domain.Expense{
		expenseOn(now, 10.125, "Food"),
	}

	s := BuildSummary(expenses, now)

	assert.Equal(t, 10.13, s.TotalExpenses)
	assert.Equal(t, 10.13, s.CategoryTotals["Food"])
}

func TestBuildSummary_Empty(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)

	s := BuildSummary(nil, now)

	assert.Zero(t, s.TotalExpenses)
	assert.Empty(t, s.CategoryTotals)
	assert.Len(t, s.WeeklyBreakdown, 7)
	assert.Zero(t, s.TotalCount)
}
