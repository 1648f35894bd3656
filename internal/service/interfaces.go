package service

import (
	"context"

	"github.com/avdeev/go-device-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages on-device accounts and login sessions. Accounts live
// only inside the encrypted local cache; sessions live only in process
// memory and disappear on exit.
type AuthService interface {
	// Register validates data, creates an account and stores it encrypted
	// in the local cache.
	// It fails with [ErrUserAlreadyExists] if an account with the same
	// email is already cached, and with a validation error if the
	// registration data is malformed.
	Register(ctx context.Context, data models.Registration) (models.User, error)

	// Login checks email and password against the cached accounts and
	// issues a fresh session on success.
	// It fails with [ErrInvalidCredentials] when the credentials are
	// malformed, unknown or do not match.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Logout discards the session with the given token. Logging out an
	// unknown token is not an error.
	Logout(ctx context.Context, token string) error

	// Session returns the live session for token.
	// It fails with [ErrSessionNotFound] for an unknown token and with
	// [ErrSessionExpired] for a token past its expiry; an expired
	// session is discarded on lookup.
	Session(ctx context.Context, token string) (models.Session, error)

	// PruneExpired drops every expired session and reports how many were
	// removed. Called periodically by the session sweeper.
	PruneExpired(ctx context.Context) int

	// WipeLocalData clears the encrypted cache, discards the device key
	// and drops all sessions. Afterwards the device is in factory state.
	WipeLocalData(ctx context.Context) error
}

// VaultService stores and retrieves application values through the
// encrypted local cache. Values are serialized and encrypted before they
// reach storage and decrypted on the way out; callers never handle
// ciphertext.
type VaultService interface {
	// SaveRecord encrypts value and stores it under id with the given kind.
	SaveRecord(ctx context.Context, id string, kind models.RecordKind, value any) error

	// LoadRecord fetches the record under id and decrypts it into target
	// (a non-nil pointer).
	// It fails with [store.ErrRecordNotFound] for an unknown id and with
	// [crypto.ErrDecryptionFailed] if the blob cannot be decrypted.
	LoadRecord(ctx context.Context, id string, target any) error

	// ListRecordIDs returns the ids of all records of the given kind,
	// oldest first.
	ListRecordIDs(ctx context.Context, kind models.RecordKind) ([]string, error)

	// DeleteRecord removes the record under id. Deleting an absent record
	// is not an error.
	DeleteRecord(ctx context.Context, id string) error
}
