package repository

import (
	"context"

	"github.com/movielog/movielog/internal/model"
)

// CommentRepository provides access to the flat comment store. Comments are
// never updated or deleted through this interface; the reply tree is a
// read-time construct over ParentID.
type CommentRepository interface {
	// Create inserts a new comment and fills in the assigned ID.
	Create(ctx context.Context, c *model.Comment) error
	// GetByID loads a single comment by ID.
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	// ListTopLevel returns parentless comments of a movie in insertion
	// order with skip/limit pagination.
	ListTopLevel(ctx context.Context, movieID int64, skip, limit int) ([]*model.Comment, error)
	// ListReplies returns the direct children of the given parents in
	// insertion order.
	ListReplies(ctx context.Context, parentIDs []int64) ([]*model.Comment, error)
}
