// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package game_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordfall/wordfall/internal/game"
	"github.com/wordfall/wordfall/internal/game/mocks"
	"github.com/wordfall/wordfall/pkg/errutil"
)

func TestNewService_NilRepository(t *testing.T) {
	svc, err := game.NewService(nil)
	require.Error(t, err)
	assert.Nil(t, svc)
	errutil.AssertErrorCode(t, err, "GAME_SERVICE_INVALID")
}

func TestService_SubmitResult(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a validated result", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo)
		require.NoError(t, err)

		stored := &game.GameResult{ID: 1, UserID: 7, Score: 4, WordLength: 6, HardMode: true, PlayedAt: time.Now()}
		repo.On("Create", ctx, int64(7), 4, 6, true).Return(stored, nil)

		result, err := svc.SubmitResult(ctx, 7, 4, 6, true)
		require.NoError(t, err)
		assert.Equal(t, stored, result)
	})

	t.Run("zero word length gets the default", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo)
		require.NoError(t, err)

		repo.On("Create", ctx, int64(7), 4, game.DefaultWordLength, false).
			Return(&game.GameResult{ID: 1}, nil)

		_, err = svc.SubmitResult(ctx, 7, 4, 0, false)
		require.NoError(t, err)
	})

	t.Run("accepts high scores as recorded losses", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo)
		require.NoError(t, err)

		stored := &game.GameResult{ID: 1, UserID: 7, Score: 150, WordLength: 5}
		repo.On("Create", ctx, int64(7), 150, 5, false).Return(stored, nil)

		result, err := svc.SubmitResult(ctx, 7, 150, 5, false)
		require.NoError(t, err)
		assert.False(t, result.IsWin())
	})

	t.Run("rejects out-of-range scores before the repository", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo)
		require.NoError(t, err)

		for _, score := range []int{0, -1, -100} {
			_, err := svc.SubmitResult(ctx, 7, score, 5, false)
			require.Error(t, err, "score %d", score)
			errutil.AssertErrorCode(t, err, "GAME_INVALID_SCORE")
		}
	})

	t.Run("rejects unsupported word lengths", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo)
		require.NoError(t, err)

		for _, length := range []int{4, 8} {
			_, err := svc.SubmitResult(ctx, 7, 4, length, false)
			require.Error(t, err, "word length %d", length)
			errutil.AssertErrorCode(t, err, "GAME_INVALID_WORD_LENGTH")
		}
	})

	t.Run("wraps repository failure", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo)
		require.NoError(t, err)

		repo.On("Create", ctx, int64(7), 4, 5, false).
			Return(nil, errors.New("connection refused"))

		_, err = svc.SubmitResult(ctx, 7, 4, 5, false)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "GAME_SUBMIT_FAILED")
	})
}

func TestService_StatsFor(t *testing.T) {
	ctx := context.Background()

	t.Run("derives stats from the ordered history", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo)
		require.NoError(t, err)

		repo.On("ListByUser", ctx, int64(7)).Return(results(3, 3, 7, 2), nil)

		stats, err := svc.StatsFor(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, game.Stats{
			Played: 4, Won: 3, Lost: 1, WinRate: 75,
			CurrentStreak: 1, MaxStreak: 2,
		}, stats)
	})

	t.Run("no history means zero stats", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo)
		require.NoError(t, err)

		repo.On("ListByUser", ctx, int64(7)).Return(nil, nil)

		stats, err := svc.StatsFor(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, game.Stats{}, stats)
	})

	t.Run("wraps repository failure", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo)
		require.NoError(t, err)

		repo.On("ListByUser", ctx, int64(7)).Return(nil, errors.New("connection refused"))

		_, err = svc.StatsFor(ctx, 7)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "GAME_STATS_FAILED")
	})
}

func TestService_LeaderboardFor(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("all time passes a nil window", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo, game.WithClock(func() time.Time { return now }))
		require.NoError(t, err)

		totals := []game.UserTotal{{Username: "alice", TotalScore: 300, GamesPlayed: 60}}
		repo.On("TotalsSince", ctx, (*time.Time)(nil)).Return(totals, nil)

		board, err := svc.LeaderboardFor(ctx, game.PeriodAllTime, 10)
		require.NoError(t, err)
		assert.Equal(t, game.PeriodAllTime, board.Period)
		assert.Nil(t, board.StartDate)
		assert.Nil(t, board.EndDate)
		require.Len(t, board.Entries, 1)
		assert.Equal(t, 1, board.Entries[0].Rank)
	})

	t.Run("weekly window trails seven days from now", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo, game.WithClock(func() time.Time { return now }))
		require.NoError(t, err)

		start := now.Add(-7 * 24 * time.Hour)
		repo.On("TotalsSince", ctx, &start).Return([]game.UserTotal{}, nil)

		board, err := svc.LeaderboardFor(ctx, game.PeriodWeekly, 10)
		require.NoError(t, err)
		require.NotNil(t, board.StartDate)
		require.NotNil(t, board.EndDate)
		assert.Equal(t, start, *board.StartDate)
		assert.Equal(t, now, *board.EndDate)
		assert.Empty(t, board.Entries)
	})

	t.Run("rejects unknown period", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo)
		require.NoError(t, err)

		_, err = svc.LeaderboardFor(ctx, game.Period("monthly"), 10)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "GAME_INVALID_PERIOD")
	})

	t.Run("wraps repository failure", func(t *testing.T) {
		repo := mocks.NewMockResultRepository(t)
		svc, err := game.NewService(repo)
		require.NoError(t, err)

		repo.On("TotalsSince", ctx, (*time.Time)(nil)).Return(nil, errors.New("connection refused"))

		_, err = svc.LeaderboardFor(ctx, game.PeriodAllTime, 10)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "GAME_LEADERBOARD_FAILED")
	})
}
