// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package web

import (
	"context"
	"time"

	"github.com/wordfall/wordfall/internal/auth"
	"github.com/wordfall/wordfall/internal/game"
)

// AuthService is the slice of the auth service the transport needs.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*auth.User, error)
	Authenticate(ctx context.Context, username, password string) (*auth.User, error)
	CreateSession(ctx context.Context, userID int64, ttl time.Duration) (string, *auth.Session, error)
	ValidateSession(ctx context.Context, rawToken string) (*auth.User, error)
	EndSession(ctx context.Context, rawToken string) (bool, error)
}

// GameService is the slice of the game service the transport needs.
type GameService interface {
	SubmitResult(ctx context.Context, userID int64, score, wordLength int, hardMode bool) (*game.GameResult, error)
	StatsFor(ctx context.Context, userID int64) (game.Stats, error)
	LeaderboardFor(ctx context.Context, period game.Period, limit int) (*game.Leaderboard, error)
}

// GuessValidator checks guesses against the loaded word lists.
type GuessValidator interface {
	Validate(language string, wordLength int, guess string) bool
}
