package store

import (
	"context"
	"fmt"

	"github.com/avdeev/go-device-vault/internal/config"
	"github.com/avdeev/go-device-vault/internal/logger"
)

// Storages groups all local storage repositories into a single value that
// can be passed around the service layer. Currently it holds only
// [CacheRepository]; additional repositories can be added here as the
// feature set grows.
type Storages struct {
	// Cache is the SQLite-backed repository for encrypted records stored
	// locally on the device.
	Cache CacheRepository
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in
//     cfg.Cache.DSN, creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [CacheRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.AppStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Cache: NewCacheRepository(db, logger),
	}, nil
}
