// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/movielog/movielog/internal/model"
)

// UserRepository provides access to user accounts.
type UserRepository interface {
	// Create inserts a new user and fills in the assigned ID.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetByUsername loads a user by exact, case-sensitive username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
