package config

import (
	"fmt"
	"time"
)

// AppSettings holds application-level settings derived from the shared
// structured config.
type AppSettings struct {
	// SessionTTL is the login session lifetime.
	SessionTTL time.Duration
	// Version is the application version string.
	Version string
}

// AppKeystore selects the keystore backend holding the device key.
type AppKeystore struct {
	// Backend is one of "keyring", "file", "memory".
	Backend string
	// Service is the OS keyring namespace (keyring backend).
	Service string
	// Path is the settings database file (file backend).
	Path string
}

// AppCache contains local encrypted cache settings.
type AppCache struct {
	// DSN is the SQLite connection string for the cache database.
	DSN string
}

// AppStorage groups storage backend settings for the app runtime.
type AppStorage struct {
	// Cache holds local cache database settings.
	Cache AppCache
	// Keystore holds device-key keystore settings.
	Keystore AppKeystore
}

// AppWorkers contains background worker settings.
type AppWorkers struct {
	// SweepInterval defines how often expired sessions are removed.
	SweepInterval time.Duration
}

// AppConfig is the top-level app-runtime configuration assembled from
// [StructuredConfig].
type AppConfig struct {
	// App contains application-level settings.
	App AppSettings
	// Storage contains storage settings.
	Storage AppStorage
	// Workers contains background job settings.
	Workers AppWorkers
}

// GetAppConfig builds and validates the app-runtime config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the on-device runtime, applies defaults for optional values,
// and validates the resulting [AppConfig].
func GetAppConfig() (*AppConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	appCfg := &AppConfig{
		App: AppSettings{
			SessionTTL: cfg.App.SessionTTL,
			Version:    cfg.App.Version,
		},
		Storage: AppStorage{
			Cache: AppCache{
				DSN: cfg.Storage.Cache.DSN,
			},
			Keystore: AppKeystore{
				Backend: cfg.Storage.Keystore.Backend,
				Service: cfg.Storage.Keystore.Service,
				Path:    cfg.Storage.Keystore.Path,
			},
		},
		Workers: AppWorkers{SweepInterval: cfg.Workers.SweepInterval},
	}
	appCfg.applyDefaults()

	return appCfg, appCfg.validate()
}

// applyDefaults fills optional settings with their defaults so a minimal
// deployment only has to provide the cache DSN.
func (cfg *AppConfig) applyDefaults() {
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = 30 * time.Minute
	}
	if cfg.Workers.SweepInterval == 0 {
		cfg.Workers.SweepInterval = time.Minute
	}
	if cfg.Storage.Keystore.Backend == "" {
		cfg.Storage.Keystore.Backend = KeystoreBackendKeyring
	}
	if cfg.Storage.Keystore.Service == "" {
		cfg.Storage.Keystore.Service = "go-device-vault"
	}
}
