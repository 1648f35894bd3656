package models

import "time"

// Role is the application role assigned to a user account. The set of
// valid roles is fixed; registration data referencing any other value is
// rejected by the validators package.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Roles lists every role accepted during registration.
var Roles = []Role{RoleAdmin, RoleManager, RoleEmployee}

// Valid reports whether r belongs to the fixed role set.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User represents an account entity cached on the device. Instances are
// persisted only inside an encrypted cache record, never in plaintext.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7).
	UserID string `json:"user_id"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Role determines which application surfaces the user may access.
	Role Role `json:"role"`

	// PasswordDigest is the hex-encoded SHA-256 digest of the user's
	// password. This value MUST be a digest, never plaintext.
	PasswordDigest string `json:"password_digest"`

	// CreatedAt is the timestamp when the account was registered
	// on this device.
	CreatedAt time.Time `json:"created_at"`
}
