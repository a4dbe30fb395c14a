package book

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Service provides book-related business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new book service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context, q Query) ([]Book, error) {
	return s.repo.List(ctx, q)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (Book, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, b Book) (Book, error) {
	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return Book{}, err
	}
	s.logger.InfoContext(ctx, "book created", "book_id", created.ID)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, b Book) (Book, error) {
	updated, err := s.repo.Update(ctx, id, b)
	if err != nil {
		return Book{}, err
	}
	s.logger.InfoContext(ctx, "book updated", "book_id", id)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	msg, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "book deleted", "book_id", id)
	return msg, nil
}
