// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordfall/wordfall/internal/auth"
	"github.com/wordfall/wordfall/pkg/errutil"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"minimum length", "abc", false},
		{"maximum length", strings.Repeat("a", 50), false},
		{"typical", "player_one", false},
		{"multi-byte letters count as one character", strings.Repeat("ä", 30), false},
		{"maximum length in multi-byte letters", strings.Repeat("ö", 50), false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"two multi-byte letters is still too short", "öö", true},
		{"too long", strings.Repeat("a", 51), true},
		{"too long in multi-byte letters", strings.Repeat("å", 51), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ValidateUsername(tt.username)
			if tt.wantErr {
				require.Error(t, err)
				errutil.AssertErrorCode(t, err, "AUTH_INVALID_USERNAME")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"minimum length", "12345678", false},
		{"maximum length", strings.Repeat("p", 100), false},
		{"eight multi-byte letters", strings.Repeat("ä", 8), false},
		{"empty", "", true},
		{"too short", "1234567", true},
		{"seven multi-byte letters is still too short", strings.Repeat("ö", 7), true},
		{"too long", strings.Repeat("p", 101), true},
		{"too long in multi-byte letters", strings.Repeat("å", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				errutil.AssertErrorCode(t, err, "AUTH_INVALID_PASSWORD")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
