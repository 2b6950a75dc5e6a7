// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

// Package auth provides the credential and session lifecycle core.
//
// # Domain Types
//
// User and Session are plain records; repositories receive values validated
// by the Service. The raw session token exists only in transit: the store
// ever sees its SHA-256 digest.
//
// # Service
//
// Service coordinates registration, login, logout, per-request session
// validation, and expired-session sweeping. It is created with NewService,
// which validates its dependencies; the clock is injectable for tests.
package auth
