// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wordfall/wordfall/internal/game"
	"github.com/wordfall/wordfall/internal/observability"
)

type gameHandlers struct {
	game    GameService
	metrics *observability.Metrics
	logger  *slog.Logger
}

type submitRequest struct {
	Score      int  `json:"score"`
	WordLength int  `json:"wordLength"`
	HardMode   bool `json:"hardMode"`
}

func (h *gameHandlers) submit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		writeUnauthorized(c)
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	result, err := h.game.SubmitResult(c.Request.Context(), user.ID, req.Score, req.WordLength, req.HardMode)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	if h.metrics != nil {
		h.metrics.GamesSubmittedTotal.Inc()
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          result.ID,
		"user_id":     result.UserID,
		"score":       result.Score,
		"word_length": result.WordLength,
		"hard_mode":   result.HardMode,
		"played_at":   result.PlayedAt.UTC().Format(time.RFC3339),
	})
}

func (h *gameHandlers) stats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		writeUnauthorized(c)
		return
	}

	stats, err := h.game.StatsFor(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *gameHandlers) weeklyLeaderboard(c *gin.Context) {
	h.leaderboard(c, game.PeriodWeekly)
}

func (h *gameHandlers) alltimeLeaderboard(c *gin.Context) {
	h.leaderboard(c, game.PeriodAllTime)
}

func (h *gameHandlers) leaderboard(c *gin.Context, period game.Period) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(c, "limit must be an integer")
			return
		}
		limit = parsed
	}

	board, err := h.game.LeaderboardFor(c.Request.Context(), period, limit)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	resp := gin.H{
		"period":      string(board.Period),
		"leaderboard": board.Entries,
	}
	if board.StartDate != nil {
		resp["start_date"] = board.StartDate.UTC().Format(time.RFC3339)
	}
	if board.EndDate != nil {
		resp["end_date"] = board.EndDate.UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, resp)
}
