// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_SESSION_TTL": "1h",
		"APP_VERSION":     "1.2.3",

		// Storage has nested prefixes: STORAGE_ + CACHE_ / KEYSTORE_
		"STORAGE_CACHE_DATABASE_URI": "/var/data/cache.db",
		"STORAGE_KEYSTORE_BACKEND":   "file",
		"STORAGE_KEYSTORE_SERVICE":   "vault-svc",
		"STORAGE_KEYSTORE_PATH":      "/var/data/settings.db",

		"WORKERS_SWEEP_INTERVAL": "30s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "/var/data/cache.db", cfg.Storage.Cache.DSN)
	assert.Equal(t, "file", cfg.Storage.Keystore.Backend)
	assert.Equal(t, "vault-svc", cfg.Storage.Keystore.Service)
	assert.Equal(t, "/var/data/settings.db", cfg.Storage.Keystore.Path)

	assert.Equal(t, 30*time.Second, cfg.Workers.SweepInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_CACHE_DATABASE_URI": "/var/data/cache.db",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/var/data/cache.db", cfg.Storage.Cache.DSN)
	assert.Empty(t, cfg.Storage.Keystore.Backend)
	assert.Zero(t, cfg.App.SessionTTL)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_SESSION_TTL": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	assert.Error(t, err)
}
