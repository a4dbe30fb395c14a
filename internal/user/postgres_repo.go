package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"shelfapi/internal/platform/postgres"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const userColumns = `id, email, username, first_name, last_name, hashed_password, is_active, date_deactivated`

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
	INSERT INTO users (email, username, first_name, last_name, hashed_password, is_active)
	VALUES ($1, $2, $3, $4, $5, true)
	RETURNING id, is_active
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, u.Email, u.Username, u.FirstName, u.LastName, u.HashedPassword).
		Scan(&u.ID, &u.IsActive)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, u.Username)
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1`
	return r.getOne(ctx, query, username)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepo) getOne(ctx context.Context, query string, arg any) (User, error) {
	var u User
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, arg).Scan(
		&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.HashedPassword, &u.IsActive, &u.DateDeactivated,
	)
	if err != nil {
		if postgres.IsNoRows(err) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}
