// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// flashai-client application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend endpoint address and timeout used by the
	// outbound HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local persistence settings (the SQLite file that
	// keeps the session credential between runs).
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs (health polling).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the TUI footer and version output.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ExportDir is the directory PDF deck exports are written into.
	// Env: APP_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`
}

// Adapter holds network settings for the outbound transport to the FlashAI
// backend.
type Adapter struct {
	// BaseURL is the backend endpoint, e.g. "http://127.0.0.1:8000".
	// A bare host:port is accepted; "http://" is assumed.
	// Env: ADAPTER_ADDRESS
	BaseURL string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session database.
type DB struct {
	// DSN is the SQLite file path holding the persisted credential
	// (e.g. "flashai-client.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthCheckInterval defines how often the backend health probe runs
	// while the client is open (e.g. "30s").
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
