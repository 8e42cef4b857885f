package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/movielog/movielog/internal/errs"
	"github.com/movielog/movielog/internal/model"
)

// MovieRepo implements MovieRepository using PostgreSQL.
type MovieRepo struct{ db *DB }

// NewMovieRepo constructs a movie repository.
func NewMovieRepo(db *DB) *MovieRepo { return &MovieRepo{db: db} }

// Create inserts a new movie row and fills in the generated ID.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = `
INSERT INTO movies (title, description, user_id)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	return r.db.Pool.QueryRow(ctx, q, m.Title, m.Description, m.UserID).Scan(&m.ID, &m.CreatedAt)
}

// GetByID selects a movie by ID.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	const q = `
SELECT id, title, description, user_id, created_at
FROM movies WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var m model.Movie
	if err := row.Scan(&m.ID, &m.Title, &m.Description, &m.UserID, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List returns movies in insertion order with pagination.
func (r *MovieRepo) List(ctx context.Context, skip, limit int) ([]*model.Movie, error) {
	const q = `
SELECT id, title, description, user_id, created_at
FROM movies
ORDER BY id ASC
OFFSET $1 LIMIT $2`
	rows, err := r.db.Pool.Query(ctx, q, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Movie{}
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.UserID, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Update replaces title and description of an existing movie.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
	const q = `UPDATE movies SET title=$2, description=$3 WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, m.ID, m.Title, m.Description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a movie together with its comments and ratings in one
// transaction, so no orphaned rows survive an owner delete.
func (r *MovieRepo) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM comments WHERE movie_id=$1`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM ratings WHERE movie_id=$1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM movies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
