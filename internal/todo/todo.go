package todo

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("todo not found")

type Todo struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Priority      int        `json:"priority"`
	Complete      bool       `json:"complete"`
	DateCreated   time.Time  `json:"date_created"`
	DateCompleted *time.Time `json:"date_completed,omitempty"`
	OwnerID       int64      `json:"owner_id"`
}

// Fields is the user-editable part of a todo.
type Fields struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Priority    int     `json:"priority" validate:"gte=1,lte=5"`
	Complete    bool    `json:"complete"`
}
