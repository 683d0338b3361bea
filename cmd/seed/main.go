package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"daytrack/client"
)

// seed populates a running server with demo todos and expenses through the
// public API.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	email := flag.String("email", "demo@example.com", "account email")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(*baseURL)
	user, err := c.Register(ctx, "Demo", "User", *email, "demo-password")
	if err != nil {
		logger.Fatalf("register: %v", err)
	}
	logger.Infof("registered %s (%s)", user.Email, user.ID)

	todos := []struct {
		title, description, priority string
	}{
		{"Buy groceries", "Milk, eggs, bread", "medium"},
		{"File tax return", "", "high"},
		{"Water the plants", "", "low"},
	}
	for _, t := range todos {
		if _, err := c.CreateTodo(ctx, t.title, t.description, t.priority); err != nil {
			logger.Fatalf("create todo %q: %v", t.title, err)
		}
	}

	now := time.Now()
	expenses := []struct {
		title    string
		amount   float64
		category string
		daysAgo  int
	}{
		{"Weekly groceries", 82.35, "Food", 1},
		{"Bus pass", 45.00, "Transportation", 2},
		{"Movie night", 18.50, "Entertainment", 4},
		{"Electricity bill", 130.20, "Bills", 9},
		{"New keyboard", 59.99, "Office", 14},
	}
	for _, e := range expenses {
		date := now.AddDate(0, 0, -e.daysAgo)
		if _, err := c.CreateExpense(ctx, e.title, e.amount, e.category, date, ""); err != nil {
			logger.Fatalf("create expense %q: %v", e.title, err)
		}
	}

	summary, err := c.ExpenseSummary(ctx)
	if err != nil {
		logger.Fatalf("summary: %v", err)
	}
	logger.Infof("seeded %d expenses, month-to-date total %.2f", summary.TotalCount, summary.MonthlyTotal)
}
