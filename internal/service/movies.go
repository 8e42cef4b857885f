package service

import (
	"context"
	"fmt"

	"github.com/movielog/movielog/internal/errs"
	"github.com/movielog/movielog/internal/model"
	"github.com/movielog/movielog/internal/repository"
)

// MovieService defines CRUD operations on movies with ownership checks on
// mutation.
type MovieService interface {
	Create(ctx context.Context, actorID int64, title, description string) (*model.Movie, error)
	Get(ctx context.Context, id int64) (*model.Movie, error)
	List(ctx context.Context, skip, limit int) ([]*model.Movie, error)
	// Update replaces title and description; only the owner may do this.
	Update(ctx context.Context, actorID, movieID int64, title, description string) (*model.Movie, error)
	// Delete removes a movie; only the owner may do this.
	Delete(ctx context.Context, actorID, movieID int64) error
}

type MovieServiceImpl struct {
	movies repository.MovieRepository
}

// NewMovieService constructs MovieService.
func NewMovieService(movies repository.MovieRepository) *MovieServiceImpl {
	return &MovieServiceImpl{movies: movies}
}

// Create stores a new movie owned by the acting user.
func (s *MovieServiceImpl) Create(ctx context.Context, actorID int64, title, description string) (*model.Movie, error) {
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: empty title/description", errs.ErrValidation)
	}
	m := &model.Movie{Title: title, Description: description, UserID: actorID}
	if err := s.movies.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get loads a movie by ID.
func (s *MovieServiceImpl) Get(ctx context.Context, id int64) (*model.Movie, error) {
	return s.movies.GetByID(ctx, id)
}

// List returns a movie page in insertion order.
func (s *MovieServiceImpl) List(ctx context.Context, skip, limit int) ([]*model.Movie, error) {
	return s.movies.List(ctx, skip, limit)
}

// Update replaces title and description after the ownership check.
// Existence is checked before ownership: a missing movie is ErrNotFound,
// never ErrForbidden.
func (s *MovieServiceImpl) Update(ctx context.Context, actorID, movieID int64, title, description string) (*model.Movie, error) {
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: empty title/description", errs.ErrValidation)
	}
	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if m.UserID != actorID {
		return nil, errs.ErrForbidden
	}
	m.Title = title
	m.Description = description
	if err := s.movies.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a movie after the ownership check.
func (s *MovieServiceImpl) Delete(ctx context.Context, actorID, movieID int64) error {
	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return err
	}
	if m.UserID != actorID {
		return errs.ErrForbidden
	}
	return s.movies.Delete(ctx, movieID)
}
