// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package game

import "math"

// Stats summarizes one user's game history.
type Stats struct {
	Played        int     `json:"played"`
	Won           int     `json:"won"`
	Lost          int     `json:"lost"`
	WinRate       float64 `json:"winRate"`
	CurrentStreak int     `json:"currentStreak"`
	MaxStreak     int     `json:"maxStreak"`
}

// ComputeStats derives statistics from a user's results. The input must be
// ordered by played_at ascending, id ascending; the streaks depend on it.
//
// WinRate is won/played as a percentage rounded to two decimals, 0.0 when no
// games were played. CurrentStreak is the run of consecutive wins at the end
// of the history; MaxStreak is the longest run anywhere in it.
func ComputeStats(results []*GameResult) Stats {
	var stats Stats
	var run int

	for _, r := range results {
		stats.Played++
		if r.IsWin() {
			stats.Won++
			run++
			if run > stats.MaxStreak {
				stats.MaxStreak = run
			}
		} else {
			stats.Lost++
			run = 0
		}
	}
	stats.CurrentStreak = run

	if stats.Played > 0 {
		rate := float64(stats.Won) / float64(stats.Played) * 100
		stats.WinRate = math.Round(rate*100) / 100
	}
	return stats
}
