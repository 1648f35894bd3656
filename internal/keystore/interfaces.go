package keystore

//go:generate mockgen -source=interfaces.go -destination=../mock/keystore_mock.go -package=mock

// KeyStore is a generic persistent string key-value store. The device key
// manager keeps the per-installation key under a single reserved
// identifier; no other component writes to that entry.
//
// The backing store is assumed to be durable across process restarts
// (OS keyring or an on-device file) but offers no encryption guarantees
// of its own — values placed here must already be safe to persist.
type KeyStore interface {
	// Get returns the value stored under id.
	// It fails with [ErrNotFound] if no entry exists.
	Get(id string) (string, error)
	// Set stores value under id, replacing any previous value.
	// The write is a single atomic string write.
	Set(id, value string) error
	// Remove deletes the entry under id. Removing an absent entry
	// is not an error.
	Remove(id string) error
}
