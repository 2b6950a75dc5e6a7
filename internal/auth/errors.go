// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package auth

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateUsername is returned when a username is already taken.
// Repositories wrap it when the database's unique constraint rejects an
// insert, so a registration race surfaces the same way as the pre-check.
var ErrDuplicateUsername = errors.New("username already taken")
