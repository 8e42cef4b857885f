package httpserver

import (
	"net/http"

	"github.com/movielog/movielog/internal/errs"
)

type ratingRequest struct {
	Score float64 `json:"score"`
}

func (s *Server) handleCreateRating(w http.ResponseWriter, r *http.Request) {
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
	var req ratingRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	rt, err := s.ratings.Create(r.Context(), movieID, &u.ID, req.Score)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rt)
}

func (s *Server) handleListRatings(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "movieID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	list, err := s.ratings.ListByMovie(r.Context(), movieID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}
