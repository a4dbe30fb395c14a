package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelfapi/internal/auth"
	"shelfapi/internal/book"
	"shelfapi/internal/config"
	"shelfapi/internal/httpx"
	"shelfapi/internal/platform/logger"
	"shelfapi/internal/platform/postgres"
	"shelfapi/internal/todo"
	"shelfapi/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := postgres.Open(ctx, cfg.Database.DSN, 2*time.Second)
	if err != nil {
		appLogger.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	appLogger.Info("database connection OK", "dsn", postgres.RedactDSN(cfg.Database.DSN))

	bookService := book.NewService(book.NewCollection(book.SeedData), appLogger)

	userRepository := user.NewPostgresRepo(dbPool, cfg.Database.QueryTimeout)
	userService := user.NewService(userRepository, appLogger)
	authService := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, userService, appLogger)

	todoRepository := todo.NewPostgresRepo(dbPool, cfg.Database.QueryTimeout)
	todoService := todo.NewService(todoRepository, appLogger)

	rateLimiter := httpx.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	router := newRouter(routerDeps{
		cfg:         cfg,
		logger:      appLogger,
		db:          dbPool,
		rateLimiter: rateLimiter,
		handlers: handlers{
			book: book.NewHTTPHandler(bookService),
			user: user.NewHTTPHandler(userService),
			auth: auth.NewHTTPHandler(authService),
			todo: todo.NewHTTPHandler(todoService),
		},
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("starting server", "addr", cfg.Server.Addr)
		serverErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		appLogger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("graceful shutdown failed", "error", err)
		}
	}
}
