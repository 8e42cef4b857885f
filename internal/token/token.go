// Package token issues and verifies signed, time-limited bearer tokens.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/movielog/movielog/internal/errs"
)

// Service signs and verifies HS256 JWTs carrying a single claim: the
// subject username. Tokens are stateless; nothing is persisted.
type Service struct {
	signKey []byte
	ttl     time.Duration
}

// NewService constructs a token service with the server-held signing key
// and the configured access-token TTL.
func NewService(signKey []byte, ttl time.Duration) *Service {
	return &Service{signKey: signKey, ttl: ttl}
}

// Issue creates a signed token for subject with expiry now+TTL.
func (s *Service) Issue(subject string, now time.Time) (string, time.Time, error) {
	exp := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}

// Verify checks signature and expiry against now and returns the embedded
// subject. Every failure mode (tampered, malformed, expired, wrong
// algorithm) collapses to errs.ErrInvalidToken so callers cannot build an
// oracle out of the distinction.
func (s *Service) Verify(tokenString string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.signKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid || claims.Subject == "" {
		return "", errs.ErrInvalidToken
	}
	return claims.Subject, nil
}
