package crypto

import "errors"

var (
	// ErrDecryptionFailed indicates the blob is malformed, was produced
	// under a different key, or the ciphertext failed authentication.
	// The error carries no cipher internals; callers surface it as a
	// generic "could not access secured data" condition.
	ErrDecryptionFailed = errors.New("decryption failed")
)
