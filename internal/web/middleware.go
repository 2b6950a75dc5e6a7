// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package web

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/wordfall/wordfall/internal/auth"
	"github.com/wordfall/wordfall/internal/observability"
	"github.com/wordfall/wordfall/pkg/errutil"
)

const (
	// SessionCookieName is the cookie carrying the raw session token.
	SessionCookieName = "session_token"

	// RequestIDHeader carries the per-request ULID back to the client.
	RequestIDHeader = "X-Request-ID"

	ctxKeyUser      = "user"
	ctxKeyRequestID = "request_id"
)

// requestID assigns a ULID to each request and echoes it in the response
// header.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ulid.Make().String()
		c.Set(ctxKeyRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// requestLogger logs one line per request and feeds the request counter.
// The metric uses the route template, not the raw path, to keep label
// cardinality bounded.
func requestLogger(logger *slog.Logger, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(ctxKeyRequestID),
		)

		if metrics != nil {
			metrics.HTTPRequestsTotal.
				WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).
				Inc()
		}
	}
}

// cors restricts cross-origin access to the configured origins. Credentialed
// requests require echoing the specific origin, never a wildcard.
func cors(origins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && slices.Contains(origins, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requireSession resolves the session cookie to a user and aborts with 401
// when it cannot. Missing, expired, and tampered credentials all produce the
// exact same envelope; only infrastructure failures surface differently.
func requireSession(authSvc AuthService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			writeUnauthorized(c)
			return
		}

		user, err := authSvc.ValidateSession(c.Request.Context(), token)
		if err != nil {
			switch errutil.Code(err) {
			case "SESSION_INVALID", "SESSION_EXPIRED":
				writeUnauthorized(c)
			default:
				writeError(c, logger, err)
			}
			return
		}

		c.Set(ctxKeyUser, user)
		c.Next()
	}
}

// currentUser returns the user set by requireSession.
func currentUser(c *gin.Context) (*auth.User, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*auth.User)
	return user, ok
}
