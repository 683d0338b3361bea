package service

import (
	"math"
	"time"

	"daytrack/internal/domain"
)

// BuildSummary computes the derived expense report relative to now. The
// weekly and monthly subsets are both filters of the full set; category
// totals deliberately cover the entire set regardless of scope.
func BuildSummary(expenses []domain.Expense, now time.Time) domain.ExpenseSummary {
	loc := now.Location()
	startOfWeek := time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, loc)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	var weekly, monthly []domain.Expense
	for _, e := range expenses {
		d := e.Date.In(loc)
		if !d.Before(startOfWeek) {
			weekly = append(weekly, e)
		}
		if !d.Before(startOfMonth) {
			monthly = append(monthly, e)
		}
	}

	categoryTotals := map[string]float64{}
	for _, e := range expenses {
		categoryTotals[e.Category] += e.Amount
	}
	for category, total := range categoryTotals {
		categoryTotals[category] = round2(total)
	}

	weeklyBreakdown := make([]domain.DayTotal, 0, 7)
	for i := 0; i < 7; i++ {
		day := startOfWeek.AddDate(0, 0, i)
		var total float64
		count := 0
		for _, e := range weekly {
			if sameDay(e.Date.In(loc), day) {
				total += e.Amount
				count++
			}
		}
		weeklyBreakdown = append(weeklyBreakdown, domain.DayTotal{
			Date:  day.Format("2006-01-02"),
			Total: round2(total),
			Count: count,
		})
	}

	// Week buckets are anchored so that bucket 0 begins weekday(1st) days
	// before the first of the month.
	weeksInMonth := (now.Day() + int(startOfMonth.Weekday()) + 6) / 7
	monthlyBreakdown := make([]domain.WeekTotal, 0, weeksInMonth)
	for week := 0; week < weeksInMonth; week++ {
		weekStart := startOfMonth.AddDate(0, 0, week*7-int(startOfMonth.Weekday()))
		weekEnd := weekStart.AddDate(0, 0, 6)

		var total float64
		count := 0
		for _, e := range monthly {
			day := truncateToDay(e.Date.In(loc))
			if !day.Before(weekStart) && !day.After(weekEnd) {
				total += e.Amount
				count++
			}
		}
		monthlyBreakdown = append(monthlyBreakdown, domain.WeekTotal{
			Week:      week + 1,
			StartDate: weekStart.Format("2006-01-02"),
			EndDate:   weekEnd.Format("2006-01-02"),
			Total:     round2(total),
			Count:     count,
		})
	}

	return domain.ExpenseSummary{
		TotalExpenses:    round2(sumAmounts(expenses)),
		WeeklyTotal:      round2(sumAmounts(weekly)),
		MonthlyTotal:     round2(sumAmounts(monthly)),
		CategoryTotals:   categoryTotals,
		WeeklyBreakdown:  weeklyBreakdown,
		MonthlyBreakdown: monthlyBreakdown,
		TotalCount:       len(expenses),
		WeeklyCount:      len(weekly),
		MonthlyCount:     len(monthly),
	}
}

func sumAmounts(expenses []domain.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
