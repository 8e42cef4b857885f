package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/movielog/movielog/internal/errs"
)

// errorBody is the error envelope returned to clients.
type errorBody struct {
	Detail string `json:"detail"`
}

// writeJSON renders v as JSON with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

// writeError maps a service error to its HTTP status and a short detail
// message. Internal error text never reaches the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := http.StatusInternalServerError, "internal server error"
	switch {
	case errors.Is(err, errs.ErrValidation):
		status, detail = http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrAlreadyExists):
		status, detail = http.StatusBadRequest, "username already registered"
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", "Bearer")
		status, detail = http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, errs.ErrForbidden):
		status, detail = http.StatusForbidden, "not authorized to modify this resource"
	case errors.Is(err, errs.ErrNotFound):
		status, detail = http.StatusNotFound, notFoundDetail(err)
	case errors.Is(err, errs.ErrRateLimited):
		status, detail = http.StatusTooManyRequests, "too many login attempts"
	}

	if status == http.StatusInternalServerError {
		s.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", RequestIDFromCtx(r.Context())),
			zap.Error(err),
		)
	} else {
		// rejected requests keep their real cause in internal logs only
		s.log.Info("request rejected",
			zap.Int("status", status),
			zap.String("path", r.URL.Path),
			zap.String("request_id", RequestIDFromCtx(r.Context())),
			zap.Error(err),
		)
	}
	s.writeJSON(w, status, errorBody{Detail: detail})
}

// notFoundDetail names the missing entity when the service wrapped it.
func notFoundDetail(err error) string {
	msg := err.Error()
	switch {
	case msg == "movie: "+errs.ErrNotFound.Error():
		return "movie not found"
	case msg == "parent comment: "+errs.ErrNotFound.Error():
		return "parent comment not found"
	default:
		return "not found"
	}
}
