// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the Wordfall CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordfall",
		Short: "Wordfall - a Finnish word game backend",
		Long: `Wordfall is the backend for a daily word guessing game:
cookie-based sessions, game result tracking, per-player statistics,
and weekly and all-time leaderboards over PostgreSQL.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}
