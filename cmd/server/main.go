package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"daytrack/internal/config"
	apphttp "daytrack/internal/http"
	"daytrack/internal/repository"
	"daytrack/internal/repository/memory"
	"daytrack/internal/repository/sqlite"
	"daytrack/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	users, todos, expenses, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Fatalf("setup storage: %v", err)
	}
	defer cleanup()

	if err := users.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := todos.Init(ctx); err != nil {
		logger.Fatalf("init todo repository: %v", err)
	}
	if err := expenses.Init(ctx); err != nil {
		logger.Fatalf("init expense repository: %v", err)
	}

	authService, err := buildAuthService(cfg, users)
	if err != nil {
		logger.Fatalf("setup auth: %v", err)
	}
	todoService := service.NewTodoService(todos)
	expenseService := service.NewExpenseService(expenses)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(authService, todoService, expenseService, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildRepositories(cfg config.Config, logger *logrus.Logger) (repository.UserRepository, repository.TodoRepository, repository.ExpenseRepository, func(), error) {
	switch cfg.Database.Driver {
	case "memory":
		logger.Info("using in-memory record store")
		return memory.NewUserRepository(), memory.NewTodoRepository(), memory.NewExpenseRepository(), func() {}, nil
	case "sqlite":
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("open database: %w", err)
		}
		logger.Infof("using sqlite record store at %s", cfg.Database.Path)
		cleanup := func() { db.Close() }
		return sqlite.NewUserRepository(db), sqlite.NewTodoRepository(db), sqlite.NewExpenseRepository(db), cleanup, nil
	default:
		return nil, nil, nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func buildAuthService(cfg config.Config, users repository.UserRepository) (service.AuthService, error) {
	switch cfg.Auth.Mode {
	case "demo":
		return service.NewDemoAuthService(), nil
	case "local":
		if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
			return nil, fmt.Errorf("auth jwt secret is required in local mode")
		}
		ttl := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
		return service.NewLocalAuthService(users, cfg.Auth.JWTSecret, ttl), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}
