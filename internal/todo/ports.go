package todo

import (
	"context"
)

// Repository operations are always scoped to an owner; another user's todo
// is reported as ErrNotFound.
type Repository interface {
	List(ctx context.Context, ownerID int64) ([]Todo, error)
	Get(ctx context.Context, ownerID, id int64) (Todo, error)
	Create(ctx context.Context, ownerID int64, f Fields) (Todo, error)
	Update(ctx context.Context, ownerID, id int64, f Fields) (Todo, error)
	Delete(ctx context.Context, ownerID, id int64) error
}
