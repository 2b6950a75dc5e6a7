// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/wordfall/wordfall/internal/auth"
	authpg "github.com/wordfall/wordfall/internal/auth/postgres"
	"github.com/wordfall/wordfall/internal/config"
	"github.com/wordfall/wordfall/internal/game"
	gamepg "github.com/wordfall/wordfall/internal/game/postgres"
	"github.com/wordfall/wordfall/internal/logging"
	"github.com/wordfall/wordfall/internal/observability"
	"github.com/wordfall/wordfall/internal/store"
	"github.com/wordfall/wordfall/internal/web"
	"github.com/wordfall/wordfall/internal/words"
)

const shutdownTimeout = 5 * time.Second

// newServeCmd creates the serve subcommand. Every flag mirrors a config
// file key so flags override the file and the file overrides defaults.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the Wordfall HTTP API, the session sweeper, and the
metrics/health endpoint, connected to PostgreSQL.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd)
		},
	}

	defaults := config.Default()
	cmd.Flags().String("http-addr", defaults.HTTPAddr, "API listen address")
	cmd.Flags().String("metrics-addr", defaults.MetricsAddr, "metrics/health HTTP address")
	cmd.Flags().String("database-url", "", "PostgreSQL connection URL (or DATABASE_URL)")
	cmd.Flags().String("log-format", defaults.LogFormat, "log format (json or text)")
	cmd.Flags().String("environment", defaults.Environment, "deployment environment (development or production)")
	cmd.Flags().StringSlice("cors-origins", defaults.CORSOrigins, "origins allowed for credentialed requests")
	cmd.Flags().String("words-dir", defaults.WordsDir, "directory holding the allowed word lists")
	cmd.Flags().Int("session-ttl-seconds", defaults.SessionTTLSeconds, "session lifetime in seconds")
	cmd.Flags().Int("sweep-interval-seconds", defaults.SweepIntervalSeconds, "expired session sweep interval in seconds")
	cmd.Flags().Bool("auto-migrate", defaults.AutoMigrate, "run pending migrations on startup")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger := logging.Setup("wordfall", version, cfg.LogFormat, nil)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := migrateUp(cfg.DatabaseURL); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	hasher := auth.NewArgon2idHasher(auth.Argon2Params{
		MemoryKiB: cfg.Argon2.MemoryKiB,
		Time:      cfg.Argon2.Time,
		Threads:   cfg.Argon2.Threads,
	})

	authSvc, err := auth.NewService(
		authpg.NewUserRepository(pool),
		authpg.NewSessionRepository(pool),
		hasher,
		auth.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	gameSvc, err := game.NewService(gamepg.NewResultRepository(pool))
	if err != nil {
		return err
	}

	wordLists, err := words.Load(cfg.WordsDir, logger)
	if err != nil {
		return err
	}

	obsServer := observability.NewServer(cfg.MetricsAddr, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return pool.Ping(pingCtx) == nil
	})
	obsErrCh, err := obsServer.Start()
	if err != nil {
		return oops.Code("SERVE_METRICS_FAILED").With("addr", cfg.MetricsAddr).Wrap(err)
	}
	logger.Info("observability server started", "addr", obsServer.Addr())

	metrics := obsServer.Metrics()
	sweeper := auth.NewSweeper(authSvc, cfg.SweepInterval(), logger, func(count int64) {
		metrics.SessionsSweptTotal.Add(float64(count))
	})
	go sweeper.Run(ctx)

	apiServer := web.NewServer(cfg.HTTPAddr, authSvc, gameSvc, wordLists, web.Options{
		SessionTTL:   cfg.SessionTTL(),
		CORSOrigins:  cfg.CORSOrigins,
		SecureCookie: cfg.Production(),
		Metrics:      metrics,
		Logger:       logger,
	})
	apiErrCh, err := apiServer.Start()
	if err != nil {
		stopServer(ctx, obsServer.Stop, logger, "observability")
		return oops.Code("SERVE_API_FAILED").With("addr", cfg.HTTPAddr).Wrap(err)
	}

	cmd.Println("Wordfall server started")
	logger.Info("server ready",
		"http_addr", apiServer.Addr(),
		"metrics_addr", obsServer.Addr(),
		"environment", cfg.Environment,
	)

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-apiErrCh:
		logger.Error("api server failed", "error", runErr)
	case runErr = <-obsErrCh:
		logger.Error("observability server failed", "error", runErr)
	}

	logger.Info("shutting down")
	stopServer(ctx, apiServer.Stop, logger, "api")
	stopServer(ctx, obsServer.Stop, logger, "observability")
	return runErr
}

// migrateUp applies all pending migrations using a dedicated connection.
func migrateUp(databaseURL string) error {
	m, err := store.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	return m.Up()
}

func stopServer(ctx context.Context, stop func(context.Context) error, logger *slog.Logger, name string) {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := stop(shutdownCtx); err != nil {
		logger.Warn("error stopping server", "server", name, "error", err)
	}
}
