// Package model defines domain entities used by services and repositories.
package model

import "time"

// User represents an account. The password is never stored in plaintext,
// only the encoded Argon2id digest.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"` // unique, case-sensitive, immutable
	Email     string `json:"email"`    // unique
	PwdHash   string `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Movie is a user-owned catalog entry. Only the owner may update or delete it.
type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"-"`
}

// Comment is a threaded comment on a movie. Comments are stored flat and
// related by ParentID; the Replies tree is materialized at read time down
// to a caller-supplied depth, never persisted.
type Comment struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	MovieID   int64      `json:"movie_id"`
	UserID    *int64     `json:"user_id"` // nil = anonymous
	ParentID  *int64     `json:"parent_comment_id"`
	Replies   []*Comment `json:"replies"`
	CreatedAt time.Time  `json:"-"`
}

// Rating is a numeric score for a movie. No range or per-user uniqueness
// constraint is enforced.
type Rating struct {
	ID        int64     `json:"id"`
	Score     float64   `json:"score"`
	MovieID   int64     `json:"movie_id"`
	UserID    *int64    `json:"user_id"`
	CreatedAt time.Time `json:"-"`
}

// Tokens collects an issued access token. Tokens are stateless: nothing is
// stored server-side, validity is proven by signature and expiry alone.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}
