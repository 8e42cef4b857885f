package service

import (
	"context"
	"time"

	"github.com/movielog/movielog/internal/errs"
	"github.com/movielog/movielog/internal/limiter"
	"github.com/movielog/movielog/internal/model"
	"github.com/movielog/movielog/internal/repository"
)

type fakeUsers struct {
	byName map[string]*model.User
	nextID int64

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.byName == nil {
		f.byName = map[string]*model.User{}
	}
	if _, exists := f.byName[u.Username]; exists {
		return errs.ErrAlreadyExists
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cpy := *u
	f.byName[u.Username] = &cpy
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.byName {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

type fakeMovies struct {
	byID   map[int64]*model.Movie
	nextID int64
}

var _ repository.MovieRepository = (*fakeMovies)(nil)

func (f *fakeMovies) Create(_ context.Context, m *model.Movie) error {
	if f.byID == nil {
		f.byID = map[int64]*model.Movie{}
	}
	f.nextID++
	m.ID = f.nextID
	cpy := *m
	f.byID[m.ID] = &cpy
	return nil
}

func (f *fakeMovies) GetByID(_ context.Context, id int64) (*model.Movie, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *m
	return &c, nil
}

func (f *fakeMovies) List(_ context.Context, skip, limit int) ([]*model.Movie, error) {
	out := []*model.Movie{}
	for id := int64(1); id <= f.nextID; id++ {
		if m, ok := f.byID[id]; ok {
			c := *m
			out = append(out, &c)
		}
	}
	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeMovies) Update(_ context.Context, m *model.Movie) error {
	if _, ok := f.byID[m.ID]; !ok {
		return errs.ErrNotFound
	}
	cpy := *m
	f.byID[m.ID] = &cpy
	return nil
}

func (f *fakeMovies) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeComments struct {
	byID   map[int64]*model.Comment
	nextID int64

	listErr error
}

var _ repository.CommentRepository = (*fakeComments)(nil)

func (f *fakeComments) Create(_ context.Context, c *model.Comment) error {
	if f.byID == nil {
		f.byID = map[int64]*model.Comment{}
	}
	f.nextID++
	c.ID = f.nextID
	cpy := *c
	cpy.Replies = nil
	f.byID[c.ID] = &cpy
	return nil
}

func (f *fakeComments) GetByID(_ context.Context, id int64) (*model.Comment, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *c
	return &cpy, nil
}

func (f *fakeComments) ListTopLevel(_ context.Context, movieID int64, skip, limit int) ([]*model.Comment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*model.Comment{}
	for id := int64(1); id <= f.nextID; id++ {
		c, ok := f.byID[id]
		if !ok || c.MovieID != movieID || c.ParentID != nil {
			continue
		}
		cpy := *c
		out = append(out, &cpy)
	}
	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeComments) ListReplies(_ context.Context, parentIDs []int64) ([]*model.Comment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	parents := map[int64]bool{}
	for _, id := range parentIDs {
		parents[id] = true
	}
	out := []*model.Comment{}
	for id := int64(1); id <= f.nextID; id++ {
		c, ok := f.byID[id]
		if !ok || c.ParentID == nil || !parents[*c.ParentID] {
			continue
		}
		cpy := *c
		out = append(out, &cpy)
	}
	return out, nil
}

type fakeRatings struct {
	byID   map[int64]*model.Rating
	nextID int64
}

var _ repository.RatingRepository = (*fakeRatings)(nil)

func (f *fakeRatings) Create(_ context.Context, r *model.Rating) error {
	if f.byID == nil {
		f.byID = map[int64]*model.Rating{}
	}
	f.nextID++
	r.ID = f.nextID
	cpy := *r
	f.byID[r.ID] = &cpy
	return nil
}

func (f *fakeRatings) ListByMovie(_ context.Context, movieID int64) ([]*model.Rating, error) {
	out := []*model.Rating{}
	for id := int64(1); id <= f.nextID; id++ {
		if r, ok := f.byID[id]; ok && r.MovieID == movieID {
			cpy := *r
			out = append(out, &cpy)
		}
	}
	return out, nil
}

type fakeLimiter struct {
	allowOK   bool
	allowErr  error
	blocked   bool
	failures  int
	successes int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (f *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	return f.allowOK, 0, f.allowErr
}

func (f *fakeLimiter) Success(context.Context, string, []byte) error {
	f.successes++
	return nil
}

func (f *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	f.failures++
	return f.blocked, 0, nil
}

func int64ptr(v int64) *int64 { return &v }
