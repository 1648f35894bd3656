// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the structured config is validated at the
// view level ([AppConfig.validate]) where defaults have been applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *AppConfig) validate() error {
	if cfg.Storage.Cache.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.Keystore.Backend {
	case KeystoreBackendKeyring:
		if cfg.Storage.Keystore.Service == "" {
			return ErrInvalidKeystoreConfigs
		}
	case KeystoreBackendFile:
		if cfg.Storage.Keystore.Path == "" {
			return ErrInvalidKeystoreConfigs
		}
	case KeystoreBackendMemory:
		// nothing to check
	default:
		return ErrInvalidKeystoreConfigs
	}

	if cfg.App.SessionTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
