// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package game

import (
	"context"
	"time"

	"github.com/samber/oops"
)

// Period selects a leaderboard window.
type Period string

const (
	// PeriodWeekly covers the trailing seven days.
	PeriodWeekly Period = "weekly"
	// PeriodAllTime covers every stored result.
	PeriodAllTime Period = "all-time"
)

// weeklyWindow is the trailing span a weekly leaderboard covers.
const weeklyWindow = 7 * 24 * time.Hour

// Leaderboard is a ranked window of user totals. StartDate and EndDate are
// set for the weekly period only.
type Leaderboard struct {
	Period    Period
	StartDate *time.Time
	EndDate   *time.Time
	Entries   []LeaderboardEntry
}

// Service provides game-result submission and the derived read models.
type Service struct {
	results ResultRepository
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the service's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new Service.
func NewService(results ResultRepository, opts ...Option) (*Service, error) {
	if results == nil {
		return nil, oops.Code("GAME_SERVICE_INVALID").Errorf("result repository is required")
	}

	s := &Service{
		results: results,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SubmitResult validates and stores a finished game. The play timestamp is
// server-assigned; clients cannot backdate results. A zero wordLength gets
// the default.
func (s *Service) SubmitResult(ctx context.Context, userID int64, score, wordLength int, hardMode bool) (*GameResult, error) {
	if err := ValidateScore(score); err != nil {
		return nil, err
	}
	if wordLength == 0 {
		wordLength = DefaultWordLength
	}
	if err := ValidateWordLength(wordLength); err != nil {
		return nil, err
	}

	result, err := s.results.Create(ctx, userID, score, wordLength, hardMode)
	if err != nil {
		return nil, oops.Code("GAME_SUBMIT_FAILED").
			With("operation", "create game result").
			With("user_id", userID).
			Wrap(err)
	}
	return result, nil
}

// StatsFor derives a user's statistics from their full history. A user with
// no recorded games gets all-zero stats, not an error.
func (s *Service) StatsFor(ctx context.Context, userID int64) (Stats, error) {
	results, err := s.results.ListByUser(ctx, userID)
	if err != nil {
		return Stats{}, oops.Code("GAME_STATS_FAILED").
			With("operation", "list results by user").
			With("user_id", userID).
			Wrap(err)
	}
	return ComputeStats(results), nil
}

// LeaderboardFor builds the ranked leaderboard for a period. The weekly
// window is the trailing seven days ending now.
func (s *Service) LeaderboardFor(ctx context.Context, period Period, limit int) (*Leaderboard, error) {
	var since *time.Time
	board := &Leaderboard{Period: period}

	switch period {
	case PeriodAllTime:
	case PeriodWeekly:
		end := s.now()
		start := end.Add(-weeklyWindow)
		since = &start
		board.StartDate = &start
		board.EndDate = &end
	default:
		return nil, oops.Code("GAME_INVALID_PERIOD").
			With("period", string(period)).
			Errorf("unknown leaderboard period %q", period)
	}

	totals, err := s.results.TotalsSince(ctx, since)
	if err != nil {
		return nil, oops.Code("GAME_LEADERBOARD_FAILED").
			With("operation", "aggregate user totals").
			With("period", string(period)).
			Wrap(err)
	}

	board.Entries = Rank(totals, limit)
	return board, nil
}
