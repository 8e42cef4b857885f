package postgres

import (
	"context"

	"github.com/movielog/movielog/internal/errs"
	"github.com/movielog/movielog/internal/model"
)

// RatingRepo implements RatingRepository using PostgreSQL.
type RatingRepo struct{ db *DB }

// NewRatingRepo constructs a rating repository.
func NewRatingRepo(db *DB) *RatingRepo { return &RatingRepo{db: db} }

// Create inserts a new rating row and fills in the generated ID.
func (r *RatingRepo) Create(ctx context.Context, rt *model.Rating) error {
	const q = `
INSERT INTO ratings (score, movie_id, user_id)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	err := r.db.Pool.QueryRow(ctx, q, rt.Score, rt.MovieID, rt.UserID).Scan(&rt.ID, &rt.CreatedAt)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// ListByMovie returns all ratings of a movie in insertion order.
func (r *RatingRepo) ListByMovie(ctx context.Context, movieID int64) ([]*model.Rating, error) {
	const q = `
SELECT id, score, movie_id, user_id, created_at
FROM ratings
WHERE movie_id=$1
ORDER BY id ASC`
	rows, err := r.db.Pool.Query(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Rating{}
	for rows.Next() {
		var rt model.Rating
		if err := rows.Scan(&rt.ID, &rt.Score, &rt.MovieID, &rt.UserID, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &rt)
	}
	return out, rows.Err()
}
