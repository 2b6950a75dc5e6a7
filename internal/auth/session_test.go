// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wordfall/wordfall/internal/auth"
)

func TestSession_IsExpiredAt(t *testing.T) {
	baseTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	session := &auth.Session{
		ID:        1,
		UserID:    7,
		TokenHash: "somedigest",
		CreatedAt: baseTime,
		ExpiresAt: baseTime.Add(time.Hour),
	}

	t.Run("not expired before expiry", func(t *testing.T) {
		assert.False(t, session.IsExpiredAt(baseTime.Add(30*time.Minute)))
	})

	t.Run("expired exactly at expiry", func(t *testing.T) {
		// Valid iff now < expires_at, so the boundary instant is expired.
		assert.True(t, session.IsExpiredAt(baseTime.Add(time.Hour)))
	})

	t.Run("expired after expiry", func(t *testing.T) {
		assert.True(t, session.IsExpiredAt(baseTime.Add(2*time.Hour)))
	})
}
