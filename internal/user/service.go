package user

import (
	"context"
	"log/slog"

	"shelfapi/internal/platform/crypto"
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

// RegisterInput carries the plain-text password; it never reaches storage.
type RegisterInput struct {
	Email     *string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	hashed, err := crypto.HashPassword(in.Password)
	if err != nil {
		return User{}, err
	}

	newUser := &User{
		Email:          in.Email,
		Username:       in.Username,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		HashedPassword: hashed,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return User{}, err
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", newUser.ID)
	return *newUser, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, username)
}
