package httpserver

import (
	"context"

	"github.com/movielog/movielog/internal/errs"
	"github.com/movielog/movielog/internal/model"
)

// fakeAuth resolves tokens from a fixed map and returns canned results for
// register and login.
type fakeAuth struct {
	registered   *model.User
	registerErr  error
	lastRegister [3]string

	loginToks model.Tokens
	loginUser *model.User
	loginErr  error
	lastLogin [2]string

	byToken map[string]*model.User
}

func (f *fakeAuth) Register(_ context.Context, username, email, password string) (*model.User, error) {
	f.lastRegister = [3]string{username, email, password}
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registered, nil
}

func (f *fakeAuth) LoginWithIP(_ context.Context, username, password, _ string) (model.Tokens, *model.User, error) {
	f.lastLogin = [2]string{username, password}
	if f.loginErr != nil {
		return model.Tokens{}, nil, f.loginErr
	}
	return f.loginToks, f.loginUser, nil
}

func (f *fakeAuth) ResolveToken(_ context.Context, tok string) (*model.User, error) {
	u, ok := f.byToken[tok]
	if !ok {
		return nil, errs.ErrInvalidToken
	}
	return u, nil
}

type fakeMovies struct {
	movie *model.Movie
	list  []*model.Movie
	err   error

	lastActorID     int64
	lastMovieID     int64
	lastSkip        int
	lastLimit       int
	lastTitle       string
	lastDescription string
	deleted         bool
}

func (f *fakeMovies) Create(_ context.Context, actorID int64, title, description string) (*model.Movie, error) {
	f.lastActorID, f.lastTitle, f.lastDescription = actorID, title, description
	if f.err != nil {
		return nil, f.err
	}
	return f.movie, nil
}

func (f *fakeMovies) Get(_ context.Context, id int64) (*model.Movie, error) {
	f.lastMovieID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.movie, nil
}

func (f *fakeMovies) List(_ context.Context, skip, limit int) ([]*model.Movie, error) {
	f.lastSkip, f.lastLimit = skip, limit
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeMovies) Update(_ context.Context, actorID, movieID int64, title, description string) (*model.Movie, error) {
	f.lastActorID, f.lastMovieID, f.lastTitle, f.lastDescription = actorID, movieID, title, description
	if f.err != nil {
		return nil, f.err
	}
	return f.movie, nil
}

func (f *fakeMovies) Delete(_ context.Context, actorID, movieID int64) error {
	f.lastActorID, f.lastMovieID = actorID, movieID
	if f.err != nil {
		return f.err
	}
	f.deleted = true
	return nil
}

type fakeComments struct {
	comment *model.Comment
	list    []*model.Comment
	err     error

	lastMovieID  int64
	lastParentID *int64
	lastAuthorID *int64
	lastContent  string
	lastSkip     int
	lastLimit    int
	lastDepth    int
}

func (f *fakeComments) Create(_ context.Context, movieID int64, authorID, parentID *int64, content string) (*model.Comment, error) {
	f.lastMovieID, f.lastAuthorID, f.lastParentID, f.lastContent = movieID, authorID, parentID, content
	if f.err != nil {
		return nil, f.err
	}
	return f.comment, nil
}

func (f *fakeComments) CreateReply(_ context.Context, parentID int64, authorID *int64, content string) (*model.Comment, error) {
	f.lastParentID, f.lastAuthorID, f.lastContent = &parentID, authorID, content
	if f.err != nil {
		return nil, f.err
	}
	return f.comment, nil
}

func (f *fakeComments) ListByMovie(_ context.Context, movieID int64, skip, limit, depth int) ([]*model.Comment, error) {
	f.lastMovieID, f.lastSkip, f.lastLimit, f.lastDepth = movieID, skip, limit, depth
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeComments) GetByID(_ context.Context, commentID int64, depth int) (*model.Comment, error) {
	f.lastParentID, f.lastDepth = &commentID, depth
	if f.err != nil {
		return nil, f.err
	}
	return f.comment, nil
}

type fakeRatings struct {
	rating *model.Rating
	list   []*model.Rating
	err    error

	lastMovieID  int64
	lastAuthorID *int64
	lastScore    float64
}

func (f *fakeRatings) Create(_ context.Context, movieID int64, authorID *int64, score float64) (*model.Rating, error) {
	f.lastMovieID, f.lastAuthorID, f.lastScore = movieID, authorID, score
	if f.err != nil {
		return nil, f.err
	}
	return f.rating, nil
}

func (f *fakeRatings) ListByMovie(_ context.Context, movieID int64) ([]*model.Rating, error) {
	f.lastMovieID = movieID
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}
