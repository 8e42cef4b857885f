package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/movielog/movielog/internal/errs"
	"github.com/movielog/movielog/internal/model"
	"github.com/movielog/movielog/internal/repository"
)

// CommentService owns creation and depth-bounded retrieval of threaded
// comments.
//
// Comments are stored flat; the reply tree is materialized on every read
// down to the requested depth and truncated to empty below it, so response
// size stays bounded no matter how deep the stored thread is. Acyclicity is
// structural: a parent can only be named at creation time and must already
// exist, so no comment can ever become its own ancestor.
type CommentService interface {
	// Create adds a comment to a movie, optionally under a parent comment
	// on the same movie.
	Create(ctx context.Context, movieID int64, authorID, parentID *int64, content string) (*model.Comment, error)
	// CreateReply adds a reply under a parent comment, inheriting the
	// parent's movie.
	CreateReply(ctx context.Context, parentID int64, authorID *int64, content string) (*model.Comment, error)
	// ListByMovie returns top-level comments of a movie, paginated, with
	// replies attached down to depth.
	ListByMovie(ctx context.Context, movieID int64, skip, limit, depth int) ([]*model.Comment, error)
	// GetByID returns one comment with replies attached down to depth.
	GetByID(ctx context.Context, commentID int64, depth int) (*model.Comment, error)
}

type CommentServiceImpl struct {
	comments repository.CommentRepository
	movies   repository.MovieRepository
}

// NewCommentService constructs CommentService.
func NewCommentService(comments repository.CommentRepository, movies repository.MovieRepository) *CommentServiceImpl {
	return &CommentServiceImpl{comments: comments, movies: movies}
}

// Create persists a new comment. The target movie must exist; a parent, if
// named, must already exist and belong to the same movie.
func (s *CommentServiceImpl) Create(ctx context.Context, movieID int64, authorID, parentID *int64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: empty content", errs.ErrValidation)
	}
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("movie: %w", errs.ErrNotFound)
		}
		return nil, err
	}
	if parentID != nil {
		parent, err := s.comments.GetByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return nil, fmt.Errorf("parent comment: %w", errs.ErrNotFound)
			}
			return nil, err
		}
		if parent.MovieID != movieID {
			return nil, fmt.Errorf("%w: parent comment belongs to a different movie", errs.ErrValidation)
		}
	}
	c := &model.Comment{
		Content:  content,
		MovieID:  movieID,
		UserID:   authorID,
		ParentID: parentID,
		Replies:  []*model.Comment{},
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateReply resolves the parent and creates a child comment on the
// parent's movie.
func (s *CommentServiceImpl) CreateReply(ctx context.Context, parentID int64, authorID *int64, content string) (*model.Comment, error) {
	parent, err := s.comments.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("parent comment: %w", errs.ErrNotFound)
		}
		return nil, err
	}
	return s.Create(ctx, parent.MovieID, authorID, &parent.ID, content)
}

// ListByMovie returns a page of top-level comments in insertion order with
// replies materialized down to depth.
func (s *CommentServiceImpl) ListByMovie(ctx context.Context, movieID int64, skip, limit, depth int) ([]*model.Comment, error) {
	comments, err := s.comments.ListTopLevel(ctx, movieID, skip, limit)
	if err != nil {
		return nil, err
	}
	if err := s.attachReplies(ctx, comments, depth); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByID returns a single comment with replies materialized down to depth.
func (s *CommentServiceImpl) GetByID(ctx context.Context, commentID int64, depth int) (*model.Comment, error) {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.attachReplies(ctx, []*model.Comment{c}, depth); err != nil {
		return nil, err
	}
	return c, nil
}

// attachReplies materializes the reply tree iteratively, one stored level
// per round trip. Depth counts levels including the given comments
// themselves: depth <= 1 leaves every Replies empty, depth n attaches n-1
// levels and truncates the rest. This is a read policy, re-applied on every
// call, not a property of storage.
func (s *CommentServiceImpl) attachReplies(ctx context.Context, roots []*model.Comment, depth int) error {
	for _, c := range roots {
		c.Replies = []*model.Comment{}
	}
	frontier := roots
	for level := 1; level < depth && len(frontier) > 0; level++ {
		ids := make([]int64, 0, len(frontier))
		byID := make(map[int64]*model.Comment, len(frontier))
		for _, c := range frontier {
			ids = append(ids, c.ID)
			byID[c.ID] = c
		}
		replies, err := s.comments.ListReplies(ctx, ids)
		if err != nil {
			return err
		}
		for _, r := range replies {
			r.Replies = []*model.Comment{}
			if parent, ok := byID[*r.ParentID]; ok {
				parent.Replies = append(parent.Replies, r)
			}
		}
		frontier = replies
	}
	return nil
}
