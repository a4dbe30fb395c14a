package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
)

// User is an account that can obtain tokens and own todos.
type User struct {
	ID              int64      `json:"id"`
	Email           *string    `json:"email,omitempty"`
	Username        string     `json:"username"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	HashedPassword  string     `json:"-"`
	IsActive        bool       `json:"is_active"`
	DateDeactivated *time.Time `json:"date_deactivated,omitempty"`
}
