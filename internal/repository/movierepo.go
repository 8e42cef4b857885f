package repository

import (
	"context"

	"github.com/movielog/movielog/internal/model"
)

// MovieRepository provides CRUD access to movies.
type MovieRepository interface {
	// Create inserts a new movie and fills in the assigned ID.
	Create(ctx context.Context, m *model.Movie) error
	// GetByID loads a movie by ID.
	GetByID(ctx context.Context, id int64) (*model.Movie, error)
	// List returns movies in insertion order with skip/limit pagination.
	List(ctx context.Context, skip, limit int) ([]*model.Movie, error)
	// Update replaces title and description in place.
	Update(ctx context.Context, m *model.Movie) error
	// Delete removes a movie and its dependent comments and ratings.
	Delete(ctx context.Context, id int64) error
}
