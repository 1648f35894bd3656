package service

import (
	"context"
	"fmt"

	"github.com/avdeev/go-device-vault/internal/crypto"
	"github.com/avdeev/go-device-vault/internal/logger"
	"github.com/avdeev/go-device-vault/internal/store"
	"github.com/avdeev/go-device-vault/models"
)

type vaultService struct {
	cache  store.CacheRepository
	cipher crypto.CipherService
	log    *logger.Logger
}

// NewVaultService constructs a [VaultService] over the encrypted cache.
func NewVaultService(cache store.CacheRepository, cipher crypto.CipherService, log *logger.Logger) VaultService {
	return &vaultService{cache: cache, cipher: cipher, log: log}
}

func (v *vaultService) SaveRecord(ctx context.Context, id string, kind models.RecordKind, value any) error {
	blob, err := v.cipher.EncryptData(value)
	if err != nil {
		return fmt.Errorf("encrypt record: %w", err)
	}

	if _, err = v.cache.Save(ctx, models.CachedRecord{ID: id, Kind: kind, Blob: blob}); err != nil {
		return fmt.Errorf("cache record: %w", err)
	}

	v.log.Debug().Str("id", id).Str("kind", string(kind)).Msg("record saved")
	return nil
}

func (v *vaultService) LoadRecord(ctx context.Context, id string, target any) error {
	record, err := v.cache.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = v.cipher.DecryptData(record.Blob, target); err != nil {
		return err
	}
	return nil
}

func (v *vaultService) ListRecordIDs(ctx context.Context, kind models.RecordKind) ([]string, error) {
	records, err := v.cache.ListByKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return ids, nil
}

func (v *vaultService) DeleteRecord(ctx context.Context, id string) error {
	if err := v.cache.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
