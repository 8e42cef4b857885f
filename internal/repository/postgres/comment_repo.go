package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/movielog/movielog/internal/errs"
	"github.com/movielog/movielog/internal/model"
)

// CommentRepo implements CommentRepository using PostgreSQL. Rows are flat;
// parent_comment_id is the only tree structure there is.
type CommentRepo struct{ db *DB }

// NewCommentRepo constructs a comment repository.
func NewCommentRepo(db *DB) *CommentRepo { return &CommentRepo{db: db} }

// Create inserts a new comment row and fills in the generated ID.
func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	const q = `
INSERT INTO comments (content, movie_id, user_id, parent_comment_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	err := r.db.Pool.QueryRow(ctx, q, c.Content, c.MovieID, c.UserID, c.ParentID).
		Scan(&c.ID, &c.CreatedAt)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// GetByID selects a single comment by ID.
func (r *CommentRepo) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	const q = `
SELECT id, content, movie_id, user_id, parent_comment_id, created_at
FROM comments WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var c model.Comment
	if err := row.Scan(&c.ID, &c.Content, &c.MovieID, &c.UserID, &c.ParentID, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListTopLevel returns parentless comments of a movie in insertion order.
func (r *CommentRepo) ListTopLevel(ctx context.Context, movieID int64, skip, limit int) ([]*model.Comment, error) {
	const q = `
SELECT id, content, movie_id, user_id, parent_comment_id, created_at
FROM comments
WHERE movie_id=$1 AND parent_comment_id IS NULL
ORDER BY id ASC
OFFSET $2 LIMIT $3`
	rows, err := r.db.Pool.Query(ctx, q, movieID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComments(rows)
}

// ListReplies returns direct children of the given parents in insertion order.
func (r *CommentRepo) ListReplies(ctx context.Context, parentIDs []int64) ([]*model.Comment, error) {
	if len(parentIDs) == 0 {
		return []*model.Comment{}, nil
	}
	const q = `
SELECT id, content, movie_id, user_id, parent_comment_id, created_at
FROM comments
WHERE parent_comment_id = ANY($1)
ORDER BY id ASC`
	rows, err := r.db.Pool.Query(ctx, q, parentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComments(rows)
}

func collectComments(rows pgx.Rows) ([]*model.Comment, error) {
	out := []*model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.MovieID, &c.UserID, &c.ParentID, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
