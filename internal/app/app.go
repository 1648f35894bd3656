// SPDX-License-Identifier: Apache-2.0

// Package app wires the full on-device stack together: keystore, entropy
// source, device key manager, cipher service, local storage, services and
// background workers.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/avdeev/go-device-vault/internal/config"
	"github.com/avdeev/go-device-vault/internal/crypto"
	"github.com/avdeev/go-device-vault/internal/devicekey"
	"github.com/avdeev/go-device-vault/internal/entropy"
	"github.com/avdeev/go-device-vault/internal/keystore"
	"github.com/avdeev/go-device-vault/internal/logger"
	"github.com/avdeev/go-device-vault/internal/service"
	"github.com/avdeev/go-device-vault/internal/store"
	"github.com/avdeev/go-device-vault/internal/validators"
	"github.com/avdeev/go-device-vault/internal/workers"
)

// App owns every long-lived component of the process. Construction wires
// the dependency graph; Run starts background workers and blocks until the
// context is cancelled.
type App struct {
	cfg      *config.AppConfig
	log      *logger.Logger
	Services *service.Services

	sweeper *workers.SessionSweeper
	workers *workers.Workers
	closers []io.Closer
}

func NewApp(cfg *config.AppConfig, log *logger.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	ks, err := app.newKeyStore(cfg.Storage.Keystore)
	if err != nil {
		return nil, fmt.Errorf("create keystore: %w", err)
	}

	src := entropy.NewSystemSource()
	keys := devicekey.NewManager(ks, src, log)
	cipher := crypto.NewCipherService(keys, src)
	validator := validators.NewCredentialValidator()

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app.Services = service.NewServices(storages, cipher, validator, keys, cfg.App.SessionTTL, log)

	app.sweeper = workers.NewSessionSweeper(app.Services.AuthService, cfg.Workers.SweepInterval, log)
	app.workers = workers.NewWorkers(app.sweeper)

	return app, nil
}

// Run starts the background workers and blocks until ctx is cancelled,
// then shuts everything down in reverse order.
func (a *App) Run(ctx context.Context) error {
	a.log.Info().Str("version", a.cfg.App.Version).Msg("application started")
	a.workers.Run()

	<-ctx.Done()

	a.sweeper.Stop()
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Err(err).Msg("error closing resource")
		}
	}

	a.log.Info().Msg("application stopped")
	return nil
}

// newKeyStore selects the keystore backend from configuration. File-backed
// stores are registered for closing at shutdown.
func (a *App) newKeyStore(cfg config.AppKeystore) (keystore.KeyStore, error) {
	switch cfg.Backend {
	case config.KeystoreBackendKeyring:
		return keystore.NewKeyringStore(cfg.Service), nil

	case config.KeystoreBackendFile:
		bolt, err := keystore.OpenBoltStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, bolt)
		return bolt, nil

	case config.KeystoreBackendMemory:
		return keystore.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown keystore backend %q", cfg.Backend)
	}
}
