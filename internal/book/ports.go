package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the contract for book storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Book, error)
	Get(ctx context.Context, id uuid.UUID) (Book, error)
	Create(ctx context.Context, b Book) (Book, error)
	Update(ctx context.Context, id uuid.UUID, b Book) (Book, error)
	Delete(ctx context.Context, id uuid.UUID) (string, error)
}
