package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/movielog/movielog/internal/errs"
	"github.com/movielog/movielog/internal/model"
	"github.com/movielog/movielog/internal/repository"
)

// RatingService owns rating creation and listing. Scores carry no range
// constraint and a user may rate the same movie multiple times.
type RatingService interface {
	Create(ctx context.Context, movieID int64, authorID *int64, score float64) (*model.Rating, error)
	ListByMovie(ctx context.Context, movieID int64) ([]*model.Rating, error)
}

type RatingServiceImpl struct {
	ratings repository.RatingRepository
	movies  repository.MovieRepository
}

// NewRatingService constructs RatingService.
func NewRatingService(ratings repository.RatingRepository, movies repository.MovieRepository) *RatingServiceImpl {
	return &RatingServiceImpl{ratings: ratings, movies: movies}
}

// Create stores a rating for an existing movie.
func (s *RatingServiceImpl) Create(ctx context.Context, movieID int64, authorID *int64, score float64) (*model.Rating, error) {
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("movie: %w", errs.ErrNotFound)
		}
		return nil, err
	}
	r := &model.Rating{Score: score, MovieID: movieID, UserID: authorID}
	if err := s.ratings.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListByMovie returns all ratings of a movie.
func (s *RatingServiceImpl) ListByMovie(ctx context.Context, movieID int64) ([]*model.Rating, error) {
	return s.ratings.ListByMovie(ctx, movieID)
}
