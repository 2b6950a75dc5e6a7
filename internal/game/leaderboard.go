// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package game

import "sort"

const (
	// MinLeaderboardLimit and MaxLeaderboardLimit clamp a requested
	// leaderboard size.
	MinLeaderboardLimit = 1
	MaxLeaderboardLimit = 100
	// DefaultLeaderboardLimit applies when no limit was requested.
	DefaultLeaderboardLimit = 10
)

// UserTotal is one user's score aggregate within a leaderboard window.
type UserTotal struct {
	Username    string
	TotalScore  int64
	GamesPlayed int64
}

// LeaderboardEntry is one ranked row of a leaderboard.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	TotalScore  int64  `json:"total_score"`
	GamesPlayed int64  `json:"games_played"`
}

// ClampLimit normalizes a requested leaderboard size. Zero or negative
// requests get the default; anything else is clamped into the allowed range.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLeaderboardLimit
	}
	if limit < MinLeaderboardLimit {
		return MinLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		return MaxLeaderboardLimit
	}
	return limit
}

// Rank orders totals by total score descending, breaking ties by fewer games
// played, and assigns dense 1-based ranks by output position. Users tied on
// both keys still receive distinct successive ranks. At most limit entries
// are returned; empty input yields an empty slice.
func Rank(totals []UserTotal, limit int) []LeaderboardEntry {
	limit = ClampLimit(limit)

	sorted := make([]UserTotal, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalScore != sorted[j].TotalScore {
			return sorted[i].TotalScore > sorted[j].TotalScore
		}
		return sorted[i].GamesPlayed < sorted[j].GamesPlayed
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]LeaderboardEntry, len(sorted))
	for i, t := range sorted {
		entries[i] = LeaderboardEntry{
			Rank:        i + 1,
			Username:    t.Username,
			TotalScore:  t.TotalScore,
			GamesPlayed: t.GamesPlayed,
		}
	}
	return entries
}
