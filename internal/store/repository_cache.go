package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/avdeev/go-device-vault/internal/logger"
	"github.com/avdeev/go-device-vault/models"
)

// cacheRepository is the SQLite-backed implementation of [CacheRepository].
// It manages the "cache_records" table holding encrypted blobs.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type cacheRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCacheRepository constructs a [CacheRepository] backed by the provided
// database connection and logger.
func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	logger.Debug().Msg("creating cache repository")
	return &cacheRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts the record, or replaces the blob and kind of an existing
// record with the same ID. CreatedAt is preserved across replacements;
// UpdatedAt always moves forward.
func (r *cacheRepository) Save(ctx context.Context, record models.CachedRecord) (models.CachedRecord, error) {
	log := logger.FromContext(ctx)

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	query, args, err := sq.Insert("cache_records").
		Columns("id", "kind", "blob", "created_at", "updated_at").
		Values(record.ID, record.Kind, record.Blob, record.CreatedAt, record.UpdatedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET kind = excluded.kind, blob = excluded.blob, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cacheRepository.Save").Msg("error: building query")
		return models.CachedRecord{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*cacheRepository.Save").Msg("error: executing upsert")
		return models.CachedRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// Get retrieves the record stored under id.
//
// Error handling:
//   - No matching row → [ErrRecordNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *cacheRepository) Get(ctx context.Context, id string) (models.CachedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "kind", "blob", "created_at", "updated_at").
		From("cache_records").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cacheRepository.Get").Msg("error: building query")
		return models.CachedRecord{}, err
	}

	var record models.CachedRecord
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&record.ID, &record.Kind, &record.Blob, &record.CreatedAt, &record.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CachedRecord{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*cacheRepository.Get").Msg("error: scanning error")
		return models.CachedRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// ListByKind returns every record of the given kind ordered by creation time.
func (r *cacheRepository) ListByKind(ctx context.Context, kind models.RecordKind) ([]models.CachedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "kind", "blob", "created_at", "updated_at").
		From("cache_records").
		Where(sq.Eq{"kind": kind}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cacheRepository.ListByKind").Msg("error: building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cacheRepository.ListByKind").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var records []models.CachedRecord
	for rows.Next() {
		var record models.CachedRecord
		if err = rows.Scan(&record.ID, &record.Kind, &record.Blob, &record.CreatedAt, &record.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*cacheRepository.ListByKind").Msg("error: scanning error")
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*cacheRepository.ListByKind").Msg("error: rows iteration")
		return nil, err
	}

	return records, nil
}

// Delete removes the record under id. No error is reported when nothing
// matched.
func (r *cacheRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("cache_records").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cacheRepository.Delete").Msg("error: building query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*cacheRepository.Delete").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Clear wipes the whole cache table. Used by the local-data wipe flow.
func (r *cacheRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, _, err := sq.Delete("cache_records").ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cacheRepository.Clear").Msg("error: building query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query); err != nil {
		log.Err(err).Str("func", "*cacheRepository.Clear").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
