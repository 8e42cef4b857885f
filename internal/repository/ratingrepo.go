package repository

import (
	"context"

	"github.com/movielog/movielog/internal/model"
)

// RatingRepository provides access to ratings. Ratings are immutable once
// created and carry no uniqueness constraint per (user, movie).
type RatingRepository interface {
	// Create inserts a new rating and fills in the assigned ID.
	Create(ctx context.Context, r *model.Rating) error
	// ListByMovie returns all ratings of a movie in insertion order.
	ListByMovie(ctx context.Context, movieID int64) ([]*model.Rating, error)
}
