package book

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"shelfapi/internal/httpx"
)

var (
	// ErrNotFound is returned when no book carries the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrAlreadyExists is returned when creating a book whose id is taken.
	ErrAlreadyExists = errors.New("book already exists")
)

// Book is a single record of the collection.
type Book struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description,omitempty" validate:"omitempty,min=1,max=250"`
	Author      string    `json:"author" validate:"required,max=100"`
	Rating      int       `json:"rating" validate:"gte=0,lte=100"`
}

// Query controls which books List returns.
type Query struct {
	// Limit keeps only the first Limit books when 0 < Limit <= size.
	Limit int
	// SkipID drops the book with this id from the result.
	SkipID uuid.UUID
}

// ValidationError lists the fields of a book that violate its constraints.
type ValidationError struct {
	Details []httpx.ErrorDetail
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		msgs = append(msgs, d.Message)
	}
	return "invalid book: " + strings.Join(msgs, "; ")
}

// Validate checks the field constraints of b.
func (b Book) Validate() error {
	if details := httpx.ValidateStruct(b); len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}
