// Package usecase implements the user business logic and exposes users as auth principals.
package usecase

import (
	"context"

	"github.com/allisson/store/internal/user/domain"
)

// RegisterUserInput contains the input data for user registration.
type RegisterUserInput struct {
	Username  string
	Pseudonym string
	Password  string //nolint:gosec // plaintext only until hashed by Register
}

// UseCase defines the interface for user business logic operations.
type UseCase interface {
	// Register validates the input, hashes the password and stores the user.
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)

	// GetByUsername returns the user with the given username or ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
