package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"daytrack/internal/domain"
)

type createTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
}

func (h *Handler) listTodos(c *gin.Context) {
	user, _ := requestUser(c)

	todos, err := h.todos.List(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.WithError(err).Error("list todos")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"todos":   todos,
	})
}

func (h *Handler) createTodo(c *gin.Context) {
	user, _ := requestUser(c)

	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), user.ID, req.Title, req.Description, domain.Priority(req.Priority))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).Error("create todo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"todo":    todo,
		"message": "Todo created successfully",
	})
}

func (h *Handler) updateTodo(c *gin.Context) {
	user, _ := requestUser(c)
	id := c.Param("id")

	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	patch := domain.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		patch.Priority = &priority
	}

	todo, err := h.todos.Update(c.Request.Context(), id, user.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		default:
			h.logger.WithError(err).Error("update todo")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"todo":    todo,
		"message": "Todo updated successfully",
	})
}

func (h *Handler) deleteTodo(c *gin.Context) {
	user, _ := requestUser(c)
	id := c.Param("id")

	if err := h.todos.Delete(c.Request.Context(), id, user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		h.logger.WithError(err).Error("delete todo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Todo deleted successfully",
	})
}
