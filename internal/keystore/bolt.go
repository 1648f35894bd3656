package keystore

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// settingsBucket holds all keystore entries in the bbolt backend.
var settingsBucket = []byte("settings")

// BoltStore is the [KeyStore] backed by a bbolt database file. It is used
// on platform families without a usable OS keyring; the file lives inside
// the installation's private data directory and is wiped together with it.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens or creates the settings database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Get implements [KeyStore].
func (s *BoltStore) Get(id string) (string, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(settingsBucket)
		if bucket == nil {
			return ErrNotFound
		}
		stored := bucket.Get([]byte(id))
		if stored == nil {
			return ErrNotFound
		}
		value = append(value, stored...)
		return nil
	})
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// Set implements [KeyStore].
func (s *BoltStore) Set(id, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(settingsBucket)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(id), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("settings db set: %w", err)
	}
	return nil
}

// Remove implements [KeyStore].
func (s *BoltStore) Remove(id string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(settingsBucket)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("settings db remove: %w", err)
	}
	return nil
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
