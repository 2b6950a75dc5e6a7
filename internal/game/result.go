// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package game

import (
	"context"
	"time"

	"github.com/samber/oops"
)

const (
	// MinScore is the lowest score a client may submit. There is no upper
	// bound; anything above MaxWinScore records a loss.
	MinScore = 1

	// MaxWinScore is the highest score that still counts as a win.
	MaxWinScore = 6

	// MinWordLength and MaxWordLength bound the supported word lengths.
	MinWordLength = 5
	MaxWordLength = 7
	// DefaultWordLength applies when a submission omits the word length.
	DefaultWordLength = 5
)

// GameResult is one finished game for one user.
type GameResult struct {
	ID         int64
	UserID     int64
	Score      int
	WordLength int
	HardMode   bool
	PlayedAt   time.Time
}

// IsWin reports whether the result counts as a win. A score of zero is
// rejected on submission but still classifies as a loss if it ever appears
// in stored data.
func (r *GameResult) IsWin() bool {
	return r.Score >= MinScore && r.Score <= MaxWinScore
}

// ValidateScore checks a submitted score.
func ValidateScore(score int) error {
	if score < MinScore {
		return oops.Code("GAME_INVALID_SCORE").
			With("score", score).
			With("min", MinScore).
			Errorf("score must be at least %d", MinScore)
	}
	return nil
}

// ValidateWordLength checks a submitted word length.
func ValidateWordLength(length int) error {
	if length < MinWordLength || length > MaxWordLength {
		return oops.Code("GAME_INVALID_WORD_LENGTH").
			With("word_length", length).
			With("min", MinWordLength).
			With("max", MaxWordLength).
			Errorf("word length must be between %d and %d", MinWordLength, MaxWordLength)
	}
	return nil
}

// ResultRepository persists and reads back game results.
type ResultRepository interface {
	// Create stores a result with a server-assigned play timestamp and
	// returns the stored record.
	Create(ctx context.Context, userID int64, score, wordLength int, hardMode bool) (*GameResult, error)

	// ListByUser returns all of a user's results ordered by played_at
	// ascending, id ascending.
	ListByUser(ctx context.Context, userID int64) ([]*GameResult, error)

	// TotalsSince returns per-user score aggregates over results played at
	// or after since; a nil since means all time. Order is unspecified.
	TotalsSince(ctx context.Context, since *time.Time) ([]UserTotal, error)
}
