package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_service_mock.go -package=mock

// KeyProvider supplies the per-installation device key. Implemented by
// [github.com/avdeev/go-device-vault/internal/devicekey.Manager]; the
// cipher service never persists or caches key material itself.
type KeyProvider interface {
	Key() ([]byte, error)
}

// CipherService covers exactly the cryptographic operations the
// application needs: one symmetric cipher, one digest, one random-token
// primitive. It is not a general-purpose cryptographic library and offers
// no algorithm agility.
type CipherService interface {
	// EncryptData serializes value to JSON and encrypts it under the
	// device key with AES-256-GCM. The result is an opaque base64 blob
	// (nonce ‖ ciphertext). The first call in a process lifetime may
	// trigger device-key provisioning.
	EncryptData(value any) (string, error)

	// DecryptData reverses EncryptData and unmarshals the plaintext
	// into target (a non-nil pointer, as for json.Unmarshal). A
	// malformed blob, a blob produced under a different key, or
	// corrupted ciphertext fails with [ErrDecryptionFailed]; partial
	// data is never returned.
	DecryptData(blob string, target any) error

	// HashPassword returns the hex-encoded SHA-256 digest of password.
	// Deterministic and unsalted: equal inputs always produce equal
	// digests. This construction is kept for compatibility with
	// already-stored digests; see the package documentation before
	// relying on it for anything new.
	HashPassword(password string) string

	// GenerateSecureToken returns a 64-character hex string built from
	// 32 bytes of fresh entropy. Independent of the device key and
	// never persisted by this subsystem.
	GenerateSecureToken() (string, error)
}
