package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"daytrack/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth     service.AuthService
	todos    service.TodoService
	expenses service.ExpenseService
	logger   *logrus.Logger
}

func NewHandler(auth service.AuthService, todos service.TodoService, expenses service.ExpenseService, logger *logrus.Logger) *Handler {
	return &Handler{
		auth:     auth,
		todos:    todos,
		expenses: expenses,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/logout", h.logout)
			auth.GET("/me", h.authRequired(), h.currentUser)
		}

		todos := api.Group("/todos", h.authRequired())
		{
			todos.GET("", h.listTodos)
			todos.POST("", h.createTodo)
			todos.PUT("/:id", h.updateTodo)
			todos.DELETE("/:id", h.deleteTodo)
		}

		expenses := api.Group("/expenses", h.authRequired())
		{
			expenses.GET("", h.listExpenses)
			expenses.POST("", h.createExpense)
			expenses.PUT("/:id", h.updateExpense)
			expenses.DELETE("/:id", h.deleteExpense)
			expenses.GET("/summary", h.expenseSummary)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
