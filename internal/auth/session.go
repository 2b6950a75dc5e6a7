// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package auth

import (
	"context"
	"time"
)

// DefaultSessionTTL is the validity window for new sessions: 7 days.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Session is proof of authentication. The raw token is known only to the
// client; the store holds its digest.
type Session struct {
	ID        int64
	UserID    int64
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpiredAt reports whether the session is expired at the given instant.
// A session is valid iff now < ExpiresAt, so expiry is inclusive.
func (s *Session) IsExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionRepository manages session persistence. It exclusively owns the
// session records; the Service never mutates them directly.
type SessionRepository interface {
	// Create stores a new session and returns it with its assigned ID and
	// creation timestamp.
	Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) (*Session, error)

	// GetByTokenHash retrieves a session by its token digest.
	// Wraps ErrNotFound if absent.
	GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error)

	// DeleteByTokenHash removes the session with the given token digest and
	// reports whether one existed. Deleting an absent session is not an
	// error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) (bool, error)

	// DeleteExpired bulk-deletes all sessions with expires_at at or before
	// the given instant, returning the number removed. The bound is
	// inclusive because a session expiring exactly now is already invalid.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
