package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shelfapi/internal/platform/crypto"
	"shelfapi/internal/user"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

const TokenTypeBearer = "bearer"

// UserFinder is the subset of the user service that login needs.
type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
}

type Token struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

type Service struct {
	secret string
	ttl    time.Duration
	users  UserFinder
	logger *slog.Logger
}

func NewService(secret string, ttl time.Duration, users UserFinder, logger *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = crypto.DefaultTokenTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		secret: secret,
		ttl:    ttl,
		users:  users,
		logger: logger,
	}
}

// Login checks the credentials and issues a bearer token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (Token, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Token{}, ErrUnauthorized
		}
		return Token{}, err
	}
	if !crypto.VerifyPassword(u.HashedPassword, password) {
		return Token{}, ErrUnauthorized
	}

	tokenStr, jti, err := crypto.GenerateToken(s.secret, u.Username, u.ID, s.ttl)
	if err != nil {
		return Token{}, err
	}

	s.logger.InfoContext(ctx, "token issued", "user_id", u.ID, "jti", jti)
	return Token{
		Token:     tokenStr,
		TokenType: TokenTypeBearer,
		ExpiresIn: int(s.ttl.Seconds()),
	}, nil
}
