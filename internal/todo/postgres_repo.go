package todo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
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

const todoColumns = `id, title, description, priority, complete, date_created, date_completed, owner_id`

func scanTodo(row pgx.Row) (Todo, error) {
	var t Todo
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Complete,
		&t.DateCreated, &t.DateCompleted, &t.OwnerID)
	if err != nil {
		if postgres.IsNoRows(err) {
			return Todo{}, ErrNotFound
		}
		return Todo{}, err
	}
	return t, nil
}

func (r *PostgresRepo) List(ctx context.Context, ownerID int64) ([]Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE owner_id = $1 ORDER BY id`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *PostgresRepo) Get(ctx context.Context, ownerID, id int64) (Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1 AND owner_id = $2`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanTodo(r.db.QueryRow(timeoutCtx, query, id, ownerID))
}

func (r *PostgresRepo) Create(ctx context.Context, ownerID int64, f Fields) (Todo, error) {
	query := `
	INSERT INTO todos (title, description, priority, complete, date_completed, owner_id)
	VALUES ($1, $2, $3, $4, CASE WHEN $4 THEN now() END, $5)
	RETURNING ` + todoColumns
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanTodo(r.db.QueryRow(timeoutCtx, query, f.Title, f.Description, f.Priority, f.Complete, ownerID))
}

// Update replaces the editable fields. date_completed keeps its first
// timestamp while the todo stays complete and is cleared when reopened.
func (r *PostgresRepo) Update(ctx context.Context, ownerID, id int64, f Fields) (Todo, error) {
	query := `
	UPDATE todos
	SET title = $1,
	    description = $2,
	    priority = $3,
	    complete = $4,
	    date_completed = CASE WHEN $4 THEN COALESCE(date_completed, now()) END
	WHERE id = $5 AND owner_id = $6
	RETURNING ` + todoColumns
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanTodo(r.db.QueryRow(timeoutCtx, query, f.Title, f.Description, f.Priority, f.Complete, id, ownerID))
}

func (r *PostgresRepo) Delete(ctx context.Context, ownerID, id int64) error {
	const query = `DELETE FROM todos WHERE id = $1 AND owner_id = $2`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
