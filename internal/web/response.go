// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wordfall/wordfall/pkg/errutil"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// statusForCode maps service error codes to HTTP statuses. Unknown codes are
// treated as internal failures.
func statusForCode(code string) int {
	switch code {
	case "AUTH_DUPLICATE_USERNAME":
		return http.StatusConflict
	case "AUTH_INVALID_CREDENTIALS", "SESSION_INVALID":
		return http.StatusUnauthorized
	case "AUTH_INVALID_USERNAME", "AUTH_INVALID_PASSWORD",
		"GAME_INVALID_SCORE", "GAME_INVALID_WORD_LENGTH", "GAME_INVALID_PERIOD",
		"REQUEST_INVALID":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a service error as the JSON error envelope. Internal
// failures get a generic message so no storage detail leaks to clients; the
// full error goes to the log instead.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	code := errutil.Code(err)
	status := statusForCode(code)

	message := err.Error()
	if status == http.StatusInternalServerError {
		if code == "" {
			code = "INTERNAL"
		}
		message = "internal server error"
		errutil.LogError(logger, "request failed", err)
	}

	c.AbortWithStatusJSON(status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

// writeBadRequest renders a request decoding failure.
func writeBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorEnvelope{
		Error: errorBody{Code: "REQUEST_INVALID", Message: message},
	})
}

// writeUnauthorized renders the generic unauthenticated response used by the
// session middleware when no credential is present at all.
func writeUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorEnvelope{
		Error: errorBody{Code: "SESSION_INVALID", Message: "not authenticated"},
	})
}
