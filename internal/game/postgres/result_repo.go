// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

// Package postgres provides the PostgreSQL-backed game result repository.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/wordfall/wordfall/internal/game"
)

// pool is the subset of pgxpool.Pool the repository uses. Tests substitute
// a pgxmock pool.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ResultRepository implements game.ResultRepository using PostgreSQL.
type ResultRepository struct {
	pool pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// Create inserts a result. The play timestamp comes from the database clock,
// never from the client.
func (r *ResultRepository) Create(ctx context.Context, userID int64, score, wordLength int, hardMode bool) (*game.GameResult, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO game_results (user_id, score, word_length, hard_mode)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, score, word_length, hard_mode, played_at
	`, userID, score, wordLength, hardMode)

	var result game.GameResult
	err := row.Scan(&result.ID, &result.UserID, &result.Score, &result.WordLength, &result.HardMode, &result.PlayedAt)
	if err != nil {
		return nil, oops.Code("RESULT_CREATE_FAILED").
			With("operation", "insert game result").
			With("user_id", userID).
			Wrap(err)
	}
	return &result, nil
}

// ListByUser returns all of a user's results ordered by played_at ascending,
// id ascending. The order is what the streak computation depends on.
func (r *ResultRepository) ListByUser(ctx context.Context, userID int64) ([]*game.GameResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, score, word_length, hard_mode, played_at
		FROM game_results
		WHERE user_id = $1
		ORDER BY played_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, oops.Code("RESULT_LIST_FAILED").
			With("operation", "list results by user").
			With("user_id", userID).
			Wrap(err)
	}
	defer rows.Close()

	var results []*game.GameResult
	for rows.Next() {
		var result game.GameResult
		err := rows.Scan(&result.ID, &result.UserID, &result.Score, &result.WordLength, &result.HardMode, &result.PlayedAt)
		if err != nil {
			return nil, oops.Code("RESULT_SCAN_FAILED").
				With("operation", "scan result row").
				Wrap(err)
		}
		results = append(results, &result)
	}

	if err := rows.Err(); err != nil {
		return nil, oops.Code("RESULT_ROWS_ERROR").
			With("operation", "iterate result rows").
			Wrap(err)
	}

	return results, nil
}

// TotalsSince aggregates per-user totals over results played at or after
// since; nil means all time. The ranking happens in the domain layer, so no
// ordering is imposed here.
func (r *ResultRepository) TotalsSince(ctx context.Context, since *time.Time) ([]game.UserTotal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.username, SUM(g.score) AS total_score, COUNT(*) AS games_played
		FROM game_results g
		JOIN users u ON u.id = g.user_id
		WHERE $1::timestamptz IS NULL OR g.played_at >= $1
		GROUP BY u.username
	`, since)
	if err != nil {
		return nil, oops.Code("RESULT_TOTALS_FAILED").
			With("operation", "aggregate user totals").
			Wrap(err)
	}
	defer rows.Close()

	var totals []game.UserTotal
	for rows.Next() {
		var t game.UserTotal
		if err := rows.Scan(&t.Username, &t.TotalScore, &t.GamesPlayed); err != nil {
			return nil, oops.Code("RESULT_SCAN_FAILED").
				With("operation", "scan totals row").
				Wrap(err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, oops.Code("RESULT_ROWS_ERROR").
			With("operation", "iterate totals rows").
			Wrap(err)
	}

	return totals, nil
}

// Compile-time interface check.
var _ game.ResultRepository = (*ResultRepository)(nil)
