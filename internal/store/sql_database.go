package store

import (
	"database/sql"

	"github.com/avdeev/go-device-vault/internal/logger"
	"github.com/avdeev/go-device-vault/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
