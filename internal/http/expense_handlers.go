package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"daytrack/internal/domain"
)

type createExpenseRequest struct {
	Title       string `json:"title"`
	Amount      any    `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type updateExpenseRequest struct {
	Title       *string `json:"title"`
	Amount      any     `json:"amount"`
	Category    *string `json:"category"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

func (h *Handler) listExpenses(c *gin.Context) {
	user, _ := requestUser(c)

	filter := domain.ExpenseFilter{Category: c.Query("category")}
	if v := c.Query("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate"})
			return
		}
		filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate"})
			return
		}
		filter.EndDate = &t
	}

	expenses, err := h.expenses.List(c.Request.Context(), user.ID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).Error("list expenses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"expenses": expenses,
	})
}

func (h *Handler) createExpense(c *gin.Context) {
	user, _ := requestUser(c)

	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, amount, and category are required"})
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a positive number"})
		return
	}

	var date *time.Time
	if req.Date != "" {
		t, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		date = &t
	}

	expense, err := h.expenses.Create(c.Request.Context(), user.ID, req.Title, amount, req.Category, date, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).Error("create expense")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"expense": expense,
		"message": "Expense created successfully",
	})
}

func (h *Handler) updateExpense(c *gin.Context) {
	user, _ := requestUser(c)
	id := c.Param("id")

	var req updateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	patch := domain.ExpensePatch{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a positive number"})
		return
	}
	patch.Amount = amount

	if req.Date != nil {
		t, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		patch.Date = &t
	}

	expense, err := h.expenses.Update(c.Request.Context(), id, user.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		default:
			h.logger.WithError(err).Error("update expense")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"expense": expense,
		"message": "Expense updated successfully",
	})
}

func (h *Handler) deleteExpense(c *gin.Context) {
	user, _ := requestUser(c)
	id := c.Param("id")

	if err := h.expenses.Delete(c.Request.Context(), id, user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		h.logger.WithError(err).Error("delete expense")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense deleted successfully",
	})
}

func (h *Handler) expenseSummary(c *gin.Context) {
	user, _ := requestUser(c)

	summary, err := h.expenses.Summarize(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.WithError(err).Error("expense summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get expense summary", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"summary": summary,
	})
}

// parseAmount tolerates both JSON numbers and numeric strings. A nil input
// means the field was omitted.
func parseAmount(v any) (*float64, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return &t, nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, err
		}
		return &f, nil
	default:
		return nil, errors.New("amount is not a number")
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
