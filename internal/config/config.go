// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// wellness tracker. It aggregates all sub-configurations and is populated
// by merging defaults, a .env file, environment variables, an optional JSON
// file and command-line overrides.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// App holds application-level settings such as the password digest
	// and the analytics window.
	App App `envPrefix:"APP_"`

	// Storage holds the embedded database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the log level and destination.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the WELLNESS_CONFIG environment variable or the
	// --config command-line flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordHashAlgorithm selects the digest used by the credential
	// service: "sha256" (default), "sha3-256", "blake2b-256" or "argon2id".
	// Env: WELLNESS_APP_PASSWORD_HASH_ALGORITHM
	PasswordHashAlgorithm string `env:"PASSWORD_HASH_ALGORITHM"`

	// CompletionWindowDays is the number of trailing days used for the
	// habit completion rate on the dashboard.
	// Env: WELLNESS_APP_COMPLETION_WINDOW_DAYS
	CompletionWindowDays int `env:"COMPLETION_WINDOW_DAYS"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds settings of the embedded SQLite database.
type DB struct {
	// Path is the location of the database file. Its parent directory is
	// created on first start.
	// Env: WELLNESS_STORAGE_DB_PATH
	Path string `env:"PATH"`

	// BusyTimeout is how long SQLite waits on a locked database before
	// reporting SQLITE_BUSY.
	// Env: WELLNESS_STORAGE_DB_BUSY_TIMEOUT
	BusyTimeout time.Duration `env:"BUSY_TIMEOUT"`

	// MaxRetries bounds the retries of an operation that failed with
	// SQLITE_BUSY or SQLITE_LOCKED.
	// Env: WELLNESS_STORAGE_DB_MAX_RETRIES
	MaxRetries uint64 `env:"MAX_RETRIES"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: WELLNESS_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the rotating log file path.
	// Env: WELLNESS_LOG_FILE
	File string `env:"FILE"`

	// Debug mirrors the log to stderr at debug level.
	// Env: WELLNESS_LOG_DEBUG
	Debug bool `env:"DEBUG"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (after loading a .env file, if present)
//  3. JSON file (path resolved from sources 2 and 4)
//  4. overrides, typically populated from command-line flags
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withJSON(overrides).
		withOverrides(overrides).
		build()
}
