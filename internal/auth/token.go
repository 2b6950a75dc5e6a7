// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"

	"github.com/samber/oops"
)

// SessionTokenBytes is the entropy of a raw session token: 32 bytes = 256 bits.
const SessionTokenBytes = 32

// GenerateSessionToken creates a secure random URL-safe token and its digest.
// Returns (plaintext_token, sha256_digest, error).
// The plaintext token is sent to the client; only the digest is persisted.
func GenerateSessionToken() (token, digest string, err error) {
	tokenBytes := make([]byte, SessionTokenBytes)
	if _, err = rand.Read(tokenBytes); err != nil {
		return "", "", oops.Code("SESSION_TOKEN_GENERATE_FAILED").
			With("operation", "crypto/rand.Read").
			With("requested_bytes", SessionTokenBytes).
			Wrap(err)
	}

	token = base64.RawURLEncoding.EncodeToString(tokenBytes)
	digest = HashSessionToken(token)

	return token, digest, nil
}

// HashSessionToken computes the hex-encoded SHA-256 digest of a session token.
// Deterministic and fast: the digest is a lookup key, not a password hash.
func HashSessionToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// VerifySessionToken checks if the plaintext token matches the stored digest.
// Uses constant-time comparison to prevent timing attacks.
func VerifySessionToken(token, digest string) (bool, error) {
	if token == "" {
		return false, oops.Code("SESSION_TOKEN_EMPTY").Errorf("session token cannot be empty")
	}
	if digest == "" {
		return false, oops.Code("SESSION_DIGEST_EMPTY").Errorf("stored digest cannot be empty")
	}
	computed := HashSessionToken(token)
	// Both are hex-encoded SHA-256 digests (64 chars), use constant-time compare
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1, nil
}
