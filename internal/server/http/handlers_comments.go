package httpserver

import (
	"net/http"

	"github.com/movielog/movielog/internal/errs"
)

type commentRequest struct {
	Content  string `json:"content" validate:"required"`
	ParentID *int64 `json:"parent_comment_id"`
}

type replyRequest struct {
	Content string `json:"content" validate:"required"`
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromCtx(r.Context())
	if !ok {
		s.writeError(w, r, errs.ErrUnauthorized)
		return
	}
	movieID, err := idParam(r, "movieID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req commentRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.comments.Create(r.Context(), movieID, &u.ID, req.ParentID, req.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

// handleCreateReply creates a child comment; the movie is inherited from
// the parent.
func (s *Server) handleCreateReply(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromCtx(r.Context())
	if !ok {
		s.writeError(w, r, errs.ErrUnauthorized)
		return
	}
	parentID, err := idParam(r, "commentID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req replyRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.comments.CreateReply(r.Context(), parentID, &u.ID, req.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "movieID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 10)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	depth, err := queryInt(r, "depth", 1)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	comments, err := s.comments.ListByMovie(r.Context(), movieID, skip, limit, depth)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, comments)
}

func (s *Server) handleGetComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := idParam(r, "commentID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	depth, err := queryInt(r, "depth", 1)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.comments.GetByID(r.Context(), commentID, depth)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}
