// SPDX-License-Identifier: Apache-2.0

// Package devicekey owns the lifecycle of the single per-installation
// symmetric key: look it up in the keystore, generate it from the entropy
// source if absent, persist it, and cache it in memory for the process
// lifetime.
//
// The key is never rotated, never transmitted, and never logged. Deleting
// the stored entry (see [Manager.Forget]) discards the device identity and
// makes previously encrypted data permanently undecryptable.
package devicekey

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/avdeev/go-device-vault/internal/entropy"
	"github.com/avdeev/go-device-vault/internal/keystore"
	"github.com/avdeev/go-device-vault/internal/logger"
)

// storageID is the reserved keystore identifier holding the hex-encoded
// device key. No other component writes to this entry.
const storageID = "device.encryption_key"

// KeySize is the device key length in bytes (256 bits).
const KeySize = 32

// Manager provisions and caches the device key. It is an explicitly
// constructed, dependency-injected component; exactly one instance should
// exist per process.
//
// The entire read-or-generate-then-persist-then-cache sequence runs under
// one mutex, so two concurrent first calls to Key cannot provision two
// different keys.
type Manager struct {
	store keystore.KeyStore
	src   entropy.Source
	log   *logger.Logger

	mu  sync.Mutex
	key []byte
}

// NewManager constructs a [Manager] over the given keystore and entropy
// source. No keystore access happens until the first call to Key.
func NewManager(store keystore.KeyStore, src entropy.Source, log *logger.Logger) *Manager {
	return &Manager{store: store, src: src, log: log}
}

// Key returns the per-installation device key, provisioning it on first
// use. After the first successful call the cached value is returned without
// touching the keystore again.
//
// A provisioning failure is reported as [ErrKeyProvisioning] and is not
// cached — a later call retries from scratch.
func (m *Manager) Key() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.key != nil {
		return copyKey(m.key), nil
	}

	key, err := m.provision()
	if err != nil {
		return nil, err
	}

	m.key = key
	return copyKey(m.key), nil
}

// provision loads the key from the keystore or generates and persists a
// new one. Caller must hold m.mu.
func (m *Manager) provision() ([]byte, error) {
	stored, err := m.store.Get(storageID)
	switch {
	case err == nil && stored != "":
		key, decodeErr := hex.DecodeString(stored)
		if decodeErr != nil || len(key) != KeySize {
			// A corrupt entry means any data encrypted under the
			// original key is already lost; refuse to silently
			// replace it.
			return nil, fmt.Errorf("%w: stored key is malformed", ErrKeyProvisioning)
		}
		m.log.Debug().Msg("device key loaded from keystore")
		return key, nil

	case err == nil || errors.Is(err, keystore.ErrNotFound):
		return m.generate()

	default:
		return nil, fmt.Errorf("%w: read keystore: %v", ErrKeyProvisioning, err)
	}
}

// generate draws a fresh key from the entropy source and persists it under
// the reserved identifier. Caller must hold m.mu.
func (m *Manager) generate() ([]byte, error) {
	key, err := m.src.Bytes(KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyProvisioning, err)
	}

	if err := m.store.Set(storageID, hex.EncodeToString(key)); err != nil {
		return nil, fmt.Errorf("%w: persist key: %v", ErrKeyProvisioning, err)
	}

	m.log.Info().Msg("device key provisioned")
	return key, nil
}

// Forget removes the persisted device key and drops the in-memory copy.
// It is invoked only by the "clear all local data" flow; afterwards any
// previously encrypted blob is permanently undecryptable.
func (m *Manager) Forget() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Remove(storageID); err != nil {
		return fmt.Errorf("remove device key: %w", err)
	}

	wipe(m.key)
	m.key = nil
	m.log.Info().Msg("device key discarded")
	return nil
}

func copyKey(key []byte) []byte {
	out := make([]byte, len(key))
	copy(out, key)
	return out
}

// wipe zeroes key material before releasing it to the garbage collector.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
