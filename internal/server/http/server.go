// Package httpserver exposes the movie review REST API.
package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/movielog/movielog/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth     service.AuthService
	movies   service.MovieService
	comments service.CommentService
	ratings  service.RatingService
	log      *zap.Logger
	validate *validator.Validate
}

// New constructs a server with injected services.
func New(auth service.AuthService, movies service.MovieService, comments service.CommentService, ratings service.RatingService, log *zap.Logger) *Server {
	return &Server{
		auth:     auth,
		movies:   movies,
		comments: comments,
		ratings:  ratings,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes builds the router. Reads are public; every mutating endpoint and
// /users/me sit behind the bearer-token gate.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.logging)
	r.Use(s.recoverPanics)

	// public
	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Post("/signup", s.handleSignup)
	r.Post("/login", s.handleLogin)
	r.Get("/movies", s.handleListMovies)
	r.Get("/movies/{movieID}", s.handleGetMovie)
	r.Get("/movies/{movieID}/comments", s.handleListComments)
	r.Get("/movies/{movieID}/ratings", s.handleListRatings)
	r.Get("/comments/{commentID}", s.handleGetComment)

	// protected
	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/users/me", s.handleMe)
		r.Post("/movies", s.handleCreateMovie)
		r.Put("/movies/{movieID}", s.handleUpdateMovie)
		r.Delete("/movies/{movieID}", s.handleDeleteMovie)
		r.Post("/movies/{movieID}/comments", s.handleCreateComment)
		r.Post("/comments/{commentID}/replies", s.handleCreateReply)
		r.Post("/movies/{movieID}/ratings", s.handleCreateRating)
	})

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the movie API!"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
