package todo

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]Todo, error) {
	return s.repo.List(ctx, ownerID)
}

func (s *Service) Get(ctx context.Context, ownerID, id int64) (Todo, error) {
	return s.repo.Get(ctx, ownerID, id)
}

func (s *Service) Create(ctx context.Context, ownerID int64, f Fields) (Todo, error) {
	t, err := s.repo.Create(ctx, ownerID, f)
	if err != nil {
		return Todo{}, err
	}
	s.logger.InfoContext(ctx, "todo created", "todo_id", t.ID, "owner_id", ownerID)
	return t, nil
}

func (s *Service) Update(ctx context.Context, ownerID, id int64, f Fields) (Todo, error) {
	t, err := s.repo.Update(ctx, ownerID, id, f)
	if err != nil {
		return Todo{}, err
	}
	s.logger.InfoContext(ctx, "todo updated", "todo_id", id, "owner_id", ownerID)
	return t, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "todo deleted", "todo_id", id, "owner_id", ownerID)
	return nil
}
