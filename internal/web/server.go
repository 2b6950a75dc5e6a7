// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/oops"

	"github.com/wordfall/wordfall/internal/auth"
	"github.com/wordfall/wordfall/internal/observability"
)

// Options configures the API server beyond its service dependencies.
type Options struct {
	// SessionTTL is the lifetime of sessions created on login; it also
	// becomes the cookie Max-Age. Zero means auth.DefaultSessionTTL.
	SessionTTL time.Duration
	// CORSOrigins are the origins allowed to make credentialed requests.
	CORSOrigins []string
	// SecureCookie marks the session cookie Secure (on in production).
	SecureCookie bool
	// Metrics, when set, receives request and submission counts.
	Metrics *observability.Metrics
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Server is the public HTTP API.
type Server struct {
	addr       string
	engine     *gin.Engine
	listener   net.Listener
	httpServer *http.Server
	logger     *slog.Logger
	running    atomic.Bool
}

// NewServer builds the API server and its route table.
func NewServer(addr string, authSvc AuthService, gameSvc GameService, words GuessValidator, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = auth.DefaultSessionTTL
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(requestLogger(opts.Logger, opts.Metrics))
	engine.Use(cors(opts.CORSOrigins))

	ah := &authHandlers{
		auth:         authSvc,
		sessionTTL:   opts.SessionTTL,
		secureCookie: opts.SecureCookie,
		logger:       opts.Logger,
	}
	gh := &gameHandlers{game: gameSvc, metrics: opts.Metrics, logger: opts.Logger}
	wh := &wordHandlers{words: words}

	engine.GET("/health", health)
	engine.POST("/validate-guess", wh.validateGuess)

	engine.POST("/auth/register", ah.register)
	engine.POST("/auth/login", ah.login)
	engine.POST("/auth/logout", ah.logout)

	engine.GET("/leaderboard/weekly", gh.weeklyLeaderboard)
	engine.GET("/leaderboard/alltime", gh.alltimeLeaderboard)

	protected := engine.Group("", requireSession(authSvc, opts.Logger))
	protected.GET("/auth/me", ah.me)
	protected.POST("/games/submit", gh.submit)
	protected.GET("/stats", gh.stats)

	return &Server{
		addr:   addr,
		engine: engine,
		logger: opts.Logger,
	}
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start begins serving the API. It returns an error channel that receives
// any serve error and is closed on graceful stop.
func (s *Server) Start() (<-chan error, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, oops.Errorf("api server already running")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.running.Store(false)
		return nil, oops.With("addr", s.addr).Wrap(err)
	}
	s.listener = listener

	httpSrv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.httpServer = httpSrv

	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		if serveErr := httpSrv.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			s.logger.Error("api server error", "error", serveErr)
			errCh <- serveErr
		}
	}()

	s.logger.Info("api server started", "addr", listener.Addr().String())
	return errCh, nil
}

// Stop gracefully shuts down the API server.
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.running.Store(true)
			return oops.With("operation", "shutdown api server").Wrap(err)
		}
	}

	s.logger.Info("api server stopped")
	return nil
}

// Addr returns the bound listen address, or empty if not running.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}
