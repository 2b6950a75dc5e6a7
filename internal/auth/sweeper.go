// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/wordfall/wordfall/pkg/errutil"
)

// Sweeper periodically removes expired sessions in bulk, keeping the lazy
// per-request deletes from being the only cleanup mechanism.
type Sweeper struct {
	svc      *Service
	interval time.Duration
	logger   *slog.Logger
	onSwept  func(count int64)
}

// NewSweeper creates a Sweeper. onSwept, if non-nil, is invoked with the
// number of sessions removed by each sweep (used for metrics).
func NewSweeper(svc *Service, interval time.Duration, logger *slog.Logger, onSwept func(count int64)) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		svc:      svc,
		interval: interval,
		logger:   logger,
		onSwept:  onSwept,
	}
}

// Run sweeps once immediately, then on every interval tick until ctx is
// cancelled. It blocks; callers run it in a goroutine.
func (w *Sweeper) Run(ctx context.Context) {
	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Sweeper) sweep(ctx context.Context) {
	count, err := w.svc.SweepExpired(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		errutil.LogError(w.logger, "expired session sweep failed", err)
		return
	}
	if count > 0 {
		w.logger.Info("swept expired sessions", "count", count)
	}
	if w.onSwept != nil {
		w.onSwept(count)
	}
}
