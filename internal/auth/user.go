// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package auth

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/samber/oops"
)

// Username and password length constraints, enforced at the boundary before
// any hashing work happens.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 8
	MaxPasswordLength = 100
)

// User represents a registered player account.
// Immutable after creation within this core's scope.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// ValidateUsername validates a username against the length rules. Lengths
// count characters, not bytes, so multi-byte letters like ä count as one.
// Usernames are case-sensitive; no case folding happens anywhere.
func ValidateUsername(username string) error {
	length := utf8.RuneCountInString(username)
	if length < MinUsernameLength {
		return oops.Code("AUTH_INVALID_USERNAME").
			With("min", MinUsernameLength).
			Errorf("username must be at least %d characters", MinUsernameLength)
	}
	if length > MaxUsernameLength {
		return oops.Code("AUTH_INVALID_USERNAME").
			With("max", MaxUsernameLength).
			Errorf("username must be at most %d characters", MaxUsernameLength)
	}
	return nil
}

// ValidatePassword validates a password against the length rules, counting
// characters the same way ValidateUsername does.
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < MinPasswordLength {
		return oops.Code("AUTH_INVALID_PASSWORD").
			With("min", MinPasswordLength).
			Errorf("password must be at least %d characters", MinPasswordLength)
	}
	if length > MaxPasswordLength {
		return oops.Code("AUTH_INVALID_PASSWORD").
			With("max", MaxPasswordLength).
			Errorf("password must be at most %d characters", MaxPasswordLength)
	}
	return nil
}

// UserRepository manages user persistence.
type UserRepository interface {
	// Create stores a new user and returns it with its assigned ID and
	// creation timestamp. Wraps ErrDuplicateUsername if the username is
	// already taken.
	Create(ctx context.Context, username, passwordHash string) (*User, error)

	// GetByID retrieves a user by ID. Wraps ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByUsername retrieves a user by exact, case-sensitive username.
	// Wraps ErrNotFound if absent.
	GetByUsername(ctx context.Context, username string) (*User, error)
}
