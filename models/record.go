package models

import "time"

// RecordKind labels what a cached record holds. The label itself is not
// sensitive; everything behind it is stored encrypted.
type RecordKind string

const (
	// KindUser is an encrypted cached user account.
	KindUser RecordKind = "user"
	// KindDashboard is an encrypted cached dashboard snapshot.
	KindDashboard RecordKind = "dashboard"
	// KindPreference is an encrypted user preference payload.
	KindPreference RecordKind = "preference"
)

// CachedRecord is a single row of the local encrypted cache. Blob is the
// opaque output of the crypto service (base64 nonce-prefixed ciphertext);
// the cache layer never inspects it.
type CachedRecord struct {
	ID        string     `json:"id"`
	Kind      RecordKind `json:"kind"`
	Blob      string     `json:"blob"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
