package keystore

import "sync"

// MemoryStore is a process-local [KeyStore]. Entries do not survive a
// restart, so every run provisions a fresh device key. Used in tests and
// in ":memory:" runs where persistence is explicitly unwanted.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty in-memory [KeyStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements [KeyStore].
func (s *MemoryStore) Get(id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[id]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set implements [KeyStore].
func (s *MemoryStore) Set(id, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[id] = value
	return nil
}

// Remove implements [KeyStore].
func (s *MemoryStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, id)
	return nil
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
