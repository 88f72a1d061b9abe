package domain

import (
	"context"
	"fmt"
)

// User represents a registered account. The password hash is produced by
// the client at registration time and never leaves the server afterwards.
type User struct {
	ID           int64  `json:"user_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// UserData is the registration input.
type UserData struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

type UserRepository interface {
	// Create inserts a new user and fills in its generated id.
	// Returns ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *User) error

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound when no user matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// UserServiceInterface defines the interface for account operations
type UserServiceInterface interface {
	Register(ctx context.Context, data UserData) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// ErrUserNotFound is returned when a user is not found
type ErrUserNotFound struct {
	Email string
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.Email)
}

// ErrUserExists is returned when trying to create a user that already exists
type ErrUserExists struct {
	Email string
}

func (e *ErrUserExists) Error() string {
	return fmt.Sprintf("user already exists: %s", e.Email)
}

// ErrInvalidUserData is returned when registration input fails validation
type ErrInvalidUserData struct {
	Message string
}

func (e *ErrInvalidUserData) Error() string {
	return e.Message
}
