// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

// Package web is the HTTP transport: a gin router over the auth and game
// services. Handlers stay thin; all domain rules live in the services, and
// errors surface as an {error:{code,message}} envelope with the status
// derived from the error code.
package web
