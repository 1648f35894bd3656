package store

import (
	"context"

	"github.com/avdeev/go-device-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cache_repository_mock.go -package=mock

// CacheRepository persists encrypted records in the local cache database.
// Blobs are opaque to this layer: encryption happens above, in the service
// layer, and nothing here ever sees plaintext.
type CacheRepository interface {
	// Save inserts the record or replaces an existing one with the same ID.
	// Timestamps are assigned by the repository.
	Save(ctx context.Context, record models.CachedRecord) (models.CachedRecord, error)

	// Get returns the record stored under id.
	// It fails with [ErrRecordNotFound] if no such record exists.
	Get(ctx context.Context, id string) (models.CachedRecord, error)

	// ListByKind returns all records of the given kind, oldest first.
	ListByKind(ctx context.Context, kind models.RecordKind) ([]models.CachedRecord, error)

	// Delete removes the record under id. Deleting an absent record is
	// not an error.
	Delete(ctx context.Context, id string) error

	// Clear removes every record from the cache.
	Clear(ctx context.Context) error
}
