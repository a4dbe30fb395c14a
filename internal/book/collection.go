package book

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Collection is an in-memory, insertion-ordered store of books. Every
// method holds the mutex for its whole duration, so each call is an atomic
// read-modify-write.
type Collection struct {
	mu    sync.Mutex
	books []Book
	seed  func() []Book
}

// NewCollection returns an empty collection that fills itself from seed on
// the first List call that finds it empty. A nil seed disables seeding.
func NewCollection(seed func() []Book) *Collection {
	return &Collection{seed: seed}
}

// Len reports the number of stored books.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.books)
}

func (c *Collection) List(_ context.Context, q Query) ([]Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.books) == 0 && c.seed != nil {
		c.books = append(c.books, c.seed()...)
	}

	out := make([]Book, 0, len(c.books))
	for _, b := range c.books {
		if q.SkipID != uuid.Nil && b.ID == q.SkipID {
			continue
		}
		out = append(out, b)
	}

	if q.Limit > 0 && q.Limit <= len(out) {
		out = out[:q.Limit]
	}
	return out, nil
}

func (c *Collection) Get(_ context.Context, id uuid.UUID) (Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, err := c.indexOf(id)
	if err != nil {
		return Book{}, err
	}
	return c.books[i], nil
}

// Create validates b and appends it. A nil id is replaced by a random one.
func (c *Collection) Create(_ context.Context, b Book) (Book, error) {
	if err := b.Validate(); err != nil {
		return Book{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	} else if _, err := c.indexOf(b.ID); err == nil {
		return Book{}, fmt.Errorf("%w: %s", ErrAlreadyExists, b.ID)
	}

	c.books = append(c.books, b)
	return b, nil
}

// Update replaces the whole record stored under id. The stored id is always
// id, whatever b.ID holds.
func (c *Collection) Update(_ context.Context, id uuid.UUID, b Book) (Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, err := c.indexOf(id)
	if err != nil {
		return Book{}, err
	}

	b.ID = id
	if err := b.Validate(); err != nil {
		return Book{}, err
	}
	c.books[i] = b
	return b, nil
}

// Delete removes the book and returns a confirmation message.
func (c *Collection) Delete(_ context.Context, id uuid.UUID) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, err := c.indexOf(id)
	if err != nil {
		return "", err
	}
	c.books = append(c.books[:i], c.books[i+1:]...)
	return fmt.Sprintf("Book %s has been deleted.", id), nil
}

// indexOf scans for id. Callers must hold c.mu.
func (c *Collection) indexOf(id uuid.UUID) (int, error) {
	for i, b := range c.books {
		if b.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrNotFound, id)
}
