package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/movielog/movielog/internal/errs"
)

func TestMovieCreateAndGet(t *testing.T) {
	t.Parallel()

	svc := NewMovieService(&fakeMovies{})
	m, err := svc.Create(context.Background(), 1, "Inception", "A thriller")
	require.NoError(t, err)
	require.NotZero(t, m.ID)
	require.Equal(t, int64(1), m.UserID)

	got, err := svc.Get(context.Background(), m.ID)
	require.NoError(t, err)
	require.Equal(t, "Inception", got.Title)
}

func TestMovieCreate_EmptyFields(t *testing.T) {
	t.Parallel()

	svc := NewMovieService(&fakeMovies{})
	_, err := svc.Create(context.Background(), 1, "", "desc")
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = svc.Create(context.Background(), 1, "title", "")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestMovieUpdate_OwnerOnly(t *testing.T) {
	t.Parallel()

	svc := NewMovieService(&fakeMovies{})
	m, err := svc.Create(context.Background(), 1, "Inception", "A thriller")
	require.NoError(t, err)

	// owner can update
	upd, err := svc.Update(context.Background(), 1, m.ID, "Inception", "Dreams within dreams")
	require.NoError(t, err)
	require.Equal(t, "Dreams within dreams", upd.Description)

	// other user is forbidden
	_, err = svc.Update(context.Background(), 2, m.ID, "Hijacked", "x")
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestMovieUpdate_MissingBeforeForbidden(t *testing.T) {
	t.Parallel()

	svc := NewMovieService(&fakeMovies{})
	// nonexistent movie: NotFound even for a non-owner
	_, err := svc.Update(context.Background(), 2, 42, "t", "d")
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NotErrorIs(t, err, errs.ErrForbidden)
}

func TestMovieDelete_OwnerOnly(t *testing.T) {
	t.Parallel()

	svc := NewMovieService(&fakeMovies{})
	m, err := svc.Create(context.Background(), 1, "Inception", "A thriller")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), 2, m.ID), errs.ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), 1, m.ID))
	_, err = svc.Get(context.Background(), m.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestMovieList_Pagination(t *testing.T) {
	t.Parallel()

	svc := NewMovieService(&fakeMovies{})
	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), 1, "Movie", "d")
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, int64(2), page[0].ID)
	require.Equal(t, int64(3), page[1].ID)
}
