package models

import "time"

// Session is an in-memory login session on the device. The token is a
// random 64-character hex string with no relationship to the device key;
// sessions are never persisted and disappear on process exit.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at the given
// point in time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
