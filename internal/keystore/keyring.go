package keystore

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore is the [KeyStore] backed by the operating system's
// credential store (Keychain, Secret Service, Credential Manager). This is
// the preferred backend wherever the platform exposes one.
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a [KeyStore] scoped to the given service name.
// All entries written by this store are namespaced under that name inside
// the OS keyring.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

// Get implements [KeyStore].
func (s *KeyringStore) Get(id string) (string, error) {
	value, err := keyring.Get(s.service, id)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("keyring get: %w", err)
	}
	return value, nil
}

// Set implements [KeyStore].
func (s *KeyringStore) Set(id, value string) error {
	if err := keyring.Set(s.service, id, value); err != nil {
		return fmt.Errorf("keyring set: %w", err)
	}
	return nil
}

// Remove implements [KeyStore].
func (s *KeyringStore) Remove(id string) error {
	err := keyring.Delete(s.service, id)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete: %w", err)
	}
	return nil
}
