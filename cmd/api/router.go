package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"shelfapi/internal/auth"
	"shelfapi/internal/book"
	"shelfapi/internal/config"
	"shelfapi/internal/httpx"
	"shelfapi/internal/todo"
	"shelfapi/internal/user"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type handlers struct {
	book *book.HTTPHandler
	user *user.HTTPHandler
	auth *auth.HTTPHandler
	todo *todo.HTTPHandler
}

type routerDeps struct {
	cfg         *config.Config
	logger      *slog.Logger
	db          Pinger
	rateLimiter *httpx.RateLimiter
	handlers    handlers
}

func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(httpx.AccessLogMiddleware(deps.logger))
	r.Use(httpx.RecoveryMiddleware(deps.logger))
	r.Use(httpx.SecurityHeadersMiddleware(deps.cfg.Server.EnableHSTS))
	r.Use(httpx.CORSMiddleware(deps.cfg.Server.AllowedOrigins))
	r.Use(httpx.RequestSizeLimitMiddleware(deps.cfg.Server.MaxBodyBytes))
	if deps.rateLimiter != nil {
		r.Use(deps.rateLimiter.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.NotFound(w, r, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := deps.db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	h := deps.handlers

	r.Route("/books", func(r chi.Router) {
		r.Get("/", h.book.List)
		r.Post("/", h.book.Create)
		r.Get("/{bookID}", h.book.Get)
		r.Put("/{bookID}", h.book.Update)
		r.Delete("/{bookID}", h.book.Delete)
	})

	r.Post("/create/user", h.user.RegisterUser)
	r.Post("/token", h.auth.IssueToken)

	r.Group(func(r chi.Router) {
		r.Use(httpx.AuthMiddleware(deps.cfg.Auth.JWTSecret))

		r.Get("/me", h.user.GetCurrentUser)

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", h.todo.List)
			r.Post("/", h.todo.Create)
			r.Get("/{todoID}", h.todo.Get)
			r.Put("/{todoID}", h.todo.Update)
			r.Delete("/{todoID}", h.todo.Delete)
		})
	})

	return r
}
