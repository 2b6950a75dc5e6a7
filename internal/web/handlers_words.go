// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type wordHandlers struct {
	words GuessValidator
}

type validateGuessRequest struct {
	Language   string `json:"language"`
	WordLength int    `json:"wordLength"`
	Guess      string `json:"guess"`
}

// validateGuess never errors on bad input; anything unrecognized is simply
// not a valid word.
func (h *wordHandlers) validateGuess(c *gin.Context) {
	var req validateGuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	valid := h.words.Validate(req.Language, req.WordLength, req.Guess)
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
