// Package service contains application services for authentication, movies,
// comments and ratings.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgcrypto "github.com/movielog/movielog/internal/crypto"
	"github.com/movielog/movielog/internal/errs"
	"github.com/movielog/movielog/internal/limiter"
	"github.com/movielog/movielog/internal/model"
	"github.com/movielog/movielog/internal/repository"
	"github.com/movielog/movielog/internal/token"
)

// AuthService defines registration, authentication and session resolution.
type AuthService interface {
	// Register creates a new user with secure password hashing.
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	// LoginWithIP applies rate limiting and authenticates the user,
	// returning a fresh bearer token on success.
	LoginWithIP(ctx context.Context, username, password, ip string) (model.Tokens, *model.User, error)
	// ResolveToken verifies a bearer token and resolves its subject to a
	// live user record. Every protected operation passes through here.
	ResolveToken(ctx context.Context, tok string) (*model.User, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	tokens *token.Service
	lim    limiter.Limiter
	now    func() time.Time
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, tokens *token.Service, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tokens: tokens, lim: lim, now: time.Now}
}

// Register creates a new user record. The plaintext password never leaves
// this function: only the salted digest is stored.
func (s *AuthServiceImpl) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: empty username/email/password", errs.ErrValidation)
	}
	digest, err := pkgcrypto.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &model.User{
		Username: username,
		Email:    email,
		PwdHash:  digest,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// LoginWithIP authenticates with rate limiting by (username, ip). Unknown
// username and wrong password are indistinguishable to the caller: both
// surface as ErrUnauthorized.
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, username, password, ip string) (model.Tokens, *model.User, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, username, ipHash)
	if err != nil {
		return model.Tokens{}, nil, err
	}
	if !allowed {
		return model.Tokens{}, nil, errs.ErrRateLimited
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !pkgcrypto.VerifyPassword(password, u.PwdHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, username, ipHash); ferr == nil && blocked {
			return model.Tokens{}, nil, errs.ErrRateLimited
		}
		// hide existence of the user on wrong password
		return model.Tokens{}, nil, errs.ErrUnauthorized
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, username, ipHash)

	access, exp, err := s.tokens.Issue(u.Username, s.now())
	if err != nil {
		return model.Tokens{}, nil, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, u, nil
}

// ResolveToken verifies the token and loads the subject. A valid token for
// a user that no longer exists fails the same way an invalid token does.
func (s *AuthServiceImpl) ResolveToken(ctx context.Context, tok string) (*model.User, error) {
	subject, err := s.tokens.Verify(tok, s.now())
	if err != nil {
		return nil, errs.ErrUnauthorized
	}
	u, err := s.users.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}
