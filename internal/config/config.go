// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

// Package config loads and validates process configuration.
//
// Precedence, lowest to highest: built-in defaults, the optional YAML config
// file, command-line flags. The resulting Config is immutable after startup
// and passed explicitly to every component that needs it.
package config

import (
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Argon2Params holds the cost parameters for argon2id password hashing.
type Argon2Params struct {
	MemoryKiB uint32 `koanf:"memory-kib"`
	Time      uint32 `koanf:"time"`
	Threads   uint8  `koanf:"threads"`
}

// Config holds all process configuration.
type Config struct {
	HTTPAddr    string `koanf:"http-addr"`
	MetricsAddr string `koanf:"metrics-addr"`
	DatabaseURL string `koanf:"database-url"`
	LogFormat   string `koanf:"log-format"`
	Environment string `koanf:"environment"`

	CORSOrigins []string `koanf:"cors-origins"`
	WordsDir    string   `koanf:"words-dir"`

	SessionTTLSeconds    int `koanf:"session-ttl-seconds"`
	SweepIntervalSeconds int `koanf:"sweep-interval-seconds"`

	AutoMigrate bool `koanf:"auto-migrate"`

	Argon2 Argon2Params `koanf:"argon2"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		HTTPAddr:             ":8080",
		MetricsAddr:          "127.0.0.1:9100",
		LogFormat:            "json",
		Environment:          "development",
		CORSOrigins:          []string{"http://localhost:3000"},
		WordsDir:             "data/words",
		SessionTTLSeconds:    604800, // 7 days
		SweepIntervalSeconds: 3600,
		AutoMigrate:          true,
		Argon2: Argon2Params{
			MemoryKiB: 64 * 1024,
			Time:      1,
			Threads:   4,
		},
	}
}

// Load builds a Config from defaults, an optional YAML file, and flags.
// path may be empty (no config file); flags may be nil.
// DATABASE_URL from the environment fills in a missing database-url key.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_FILE_FAILED").
				With("path", path).
				Wrap(err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, oops.Code("CONFIG_FLAGS_FAILED").Wrap(err)
		}
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_UNMARSHAL_FAILED").Wrap(err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return oops.Code("CONFIG_INVALID").Errorf("http-addr is required")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return oops.Code("CONFIG_INVALID").
			Errorf("log-format must be 'json' or 'text', got %q", c.LogFormat)
	}
	if c.SessionTTLSeconds <= 0 {
		return oops.Code("CONFIG_INVALID").Errorf("session-ttl-seconds must be positive")
	}
	if c.SweepIntervalSeconds <= 0 {
		return oops.Code("CONFIG_INVALID").Errorf("sweep-interval-seconds must be positive")
	}
	if c.Argon2.MemoryKiB == 0 || c.Argon2.Time == 0 || c.Argon2.Threads == 0 {
		return oops.Code("CONFIG_INVALID").Errorf("argon2 parameters must be positive")
	}
	return nil
}

// SessionTTL returns the session time-to-live as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

// SweepInterval returns the expired-session sweep interval as a duration.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// Production reports whether the process runs in the production environment.
// The session cookie is only marked Secure in production.
func (c *Config) Production() bool {
	return c.Environment == "production"
}
