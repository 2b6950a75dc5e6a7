// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

// Package game holds the game-result domain: submitted results, per-user
// statistics, and leaderboard ranking.
//
// Results are append-only. Statistics and leaderboards are derived on read
// from the stored results; nothing is cached or incrementally maintained.
package game
