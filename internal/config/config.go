// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// Keystore backend names accepted by the configuration.
const (
	KeystoreBackendKeyring = "keyring"
	KeystoreBackendFile    = "file"
	KeystoreBackendMemory  = "memory"
)

// StructuredConfig is the top-level configuration container for the
// go-device-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session lifetime and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// local encrypted cache database and the device-key keystore.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionTTL specifies how long a login session remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// Cache holds the local encrypted cache database settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Keystore holds the device-key keystore settings.
	Keystore Keystore `envPrefix:"KEYSTORE_"`
}

// Cache contains local cache database connection settings.
type Cache struct {
	// DSN is the SQLite connection string for the local encrypted
	// cache (a file path, or ":memory:" for ephemeral runs).
	// Env: STORAGE_CACHE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Keystore selects and configures the persistent key-value store holding
// the device key.
type Keystore struct {
	// Backend selects the keystore implementation: "keyring" (OS
	// credential store), "file" (bbolt database), or "memory"
	// (ephemeral, testing only).
	// Env: STORAGE_KEYSTORE_BACKEND
	Backend string `env:"BACKEND"`

	// Service is the namespace used inside the OS keyring.
	// Env: STORAGE_KEYSTORE_SERVICE
	Service string `env:"SERVICE"`

	// Path is the settings database file path for the "file" backend.
	// Env: STORAGE_KEYSTORE_PATH
	Path string `env:"PATH"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval defines how often the session sweeper removes
	// expired sessions.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the full configuration
// from environment variables, command-line flags, and the optional JSON
// file (in that order of precedence).
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	return cfg, nil
}
