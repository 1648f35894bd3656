package config

import "errors"

// Validation errors returned by [AppConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid cache storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidKeystoreConfigs indicates an unknown keystore backend or
	// missing backend-specific settings (service name, file path).
	ErrInvalidKeystoreConfigs = errors.New("invalid keystore configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a zero session lifetime).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero sweep interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
