// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/samber/oops"

	"github.com/wordfall/wordfall/pkg/errutil"
)

// dummyPasswordHash is used when a user doesn't exist to prevent timing attacks.
// We still run password verification to make response time consistent.
// This is NOT a real credential - it's a fake hash that will never match any password.
//
//nolint:gosec // G101: This is an intentionally fake hash for timing attack prevention, not a credential.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Service provides authentication and session lifecycle operations.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	hasher   PasswordHasher
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the service's time source. Tests use this to exercise
// expiry behavior without waiting on the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger used for best-effort side-effect failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService creates a new Service.
func NewService(users UserRepository, sessions SessionRepository, hasher PasswordHasher, opts ...Option) (*Service, error) {
	if users == nil {
		return nil, oops.Code("AUTH_SERVICE_INVALID").Errorf("users repository is required")
	}
	if sessions == nil {
		return nil, oops.Code("AUTH_SERVICE_INVALID").Errorf("sessions repository is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_SERVICE_INVALID").Errorf("password hasher is required")
	}

	s := &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Register creates a new user with a hashed password.
// Returns AUTH_DUPLICATE_USERNAME when the username is taken, whether caught
// by the pre-check or by the database's unique constraint in a race.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil, oops.Code("AUTH_DUPLICATE_USERNAME").
			With("username", username).
			Wrap(ErrDuplicateUsername)
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "get user by username").
			Wrap(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "hash password").
			Wrap(err)
	}

	user, err := s.users.Create(ctx, username, hash)
	if err != nil {
		// The unique constraint is the source of truth; a concurrent insert
		// surfaces the same way as the pre-check.
		if errors.Is(err, ErrDuplicateUsername) {
			return nil, oops.Code("AUTH_DUPLICATE_USERNAME").
				With("username", username).
				Wrap(ErrDuplicateUsername)
		}
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "create user").
			Wrap(err)
	}

	return user, nil
}

// Authenticate verifies a username/password pair.
// Unknown username and wrong password return the identical
// AUTH_INVALID_CREDENTIALS error; a dummy verification keeps response time
// uniform so usernames cannot be enumerated.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, lookupErr := s.users.GetByUsername(ctx, username)

	targetHash := dummyPasswordHash
	userExists := false

	if lookupErr != nil {
		if !errors.Is(lookupErr, ErrNotFound) {
			return nil, oops.Code("AUTH_LOGIN_FAILED").
				With("operation", "get user by username").
				Wrap(lookupErr)
		}
	} else {
		targetHash = user.PasswordHash
		userExists = true
	}

	valid, verifyErr := s.hasher.Verify(password, targetHash)
	if verifyErr != nil {
		if !userExists {
			return nil, oops.Code("AUTH_INVALID_CREDENTIALS").Errorf("invalid username or password")
		}
		return nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "verify password").
			Wrap(verifyErr)
	}

	if !userExists || !valid {
		return nil, oops.Code("AUTH_INVALID_CREDENTIALS").Errorf("invalid username or password")
	}

	return user, nil
}

// CreateSession generates a session token for the user and persists its
// digest with an absolute expiry of now + ttl (DefaultSessionTTL when ttl
// is not positive). The raw token is returned exactly once; it is never
// retrievable again. Multiple concurrent sessions per user are independent.
func (s *Service) CreateSession(ctx context.Context, userID int64, ttl time.Duration) (string, *Session, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	token, tokenHash, err := GenerateSessionToken()
	if err != nil {
		return "", nil, oops.Code("SESSION_CREATE_FAILED").
			With("operation", "generate session token").
			Wrap(err)
	}

	session, err := s.sessions.Create(ctx, userID, tokenHash, s.now().Add(ttl))
	if err != nil {
		return "", nil, oops.Code("SESSION_CREATE_FAILED").
			With("operation", "persist session").
			With("user_id", userID).
			Wrap(err)
	}

	return token, session, nil
}

// ValidateSession resolves a raw session token to its owning user.
// An expired session is deleted as a side effect and reported invalid (lazy
// expiry - the only mechanism on the request path). An orphaned session
// whose user is gone is likewise removed and reported invalid.
func (s *Service) ValidateSession(ctx context.Context, rawToken string) (*User, error) {
	if rawToken == "" {
		return nil, oops.Code("SESSION_INVALID").Errorf("invalid session token")
	}

	tokenHash := HashSessionToken(rawToken)

	session, err := s.sessions.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, oops.Code("SESSION_INVALID").Errorf("invalid session token")
		}
		return nil, oops.Code("SESSION_VALIDATE_FAILED").
			With("operation", "get session by token hash").
			Wrap(err)
	}

	if session.IsExpiredAt(s.now()) {
		// A concurrent sweep may already have removed it; both deletes are
		// idempotent, so the race is harmless.
		s.deleteBestEffort(ctx, tokenHash)
		return nil, oops.Code("SESSION_EXPIRED").Errorf("session has expired")
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Orphaned session: cascade-delete should make this impossible.
			s.deleteBestEffort(ctx, tokenHash)
			return nil, oops.Code("SESSION_INVALID").Errorf("invalid session token")
		}
		return nil, oops.Code("SESSION_VALIDATE_FAILED").
			With("operation", "get session user").
			With("user_id", session.UserID).
			Wrap(err)
	}

	return user, nil
}

// EndSession deletes the session matching the raw token and reports whether
// one existed. Idempotent: a second call is safe and returns false.
func (s *Service) EndSession(ctx context.Context, rawToken string) (bool, error) {
	if rawToken == "" {
		return false, nil
	}

	existed, err := s.sessions.DeleteByTokenHash(ctx, HashSessionToken(rawToken))
	if err != nil {
		return false, oops.Code("SESSION_DELETE_FAILED").
			With("operation", "delete session by token hash").
			Wrap(err)
	}
	return existed, nil
}

// SweepExpired bulk-deletes all sessions that expired before now and returns
// the number removed. A maintenance operation, not part of the request path;
// it issues a single bounded bulk delete.
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	count, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, oops.Code("SESSION_SWEEP_FAILED").
			With("operation", "delete expired sessions").
			Wrap(err)
	}
	return count, nil
}

func (s *Service) deleteBestEffort(ctx context.Context, tokenHash string) {
	if _, err := s.sessions.DeleteByTokenHash(ctx, tokenHash); err != nil {
		errutil.LogError(s.logger, "failed to delete stale session", err)
	}
}
