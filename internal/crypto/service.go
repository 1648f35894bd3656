// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the symmetric encryption, password digest, and
// secure token operations of the local data protection layer.
//
// Encrypted blobs are authenticated: the original design used an
// unauthenticated chained block mode and relied on deserialization
// failures for tamper detection, which this implementation replaces with
// AES-256-GCM so corruption and wrong-key decryption fail the tag check
// directly.
//
// HashPassword is an unsalted single-round SHA-256 digest. That is a known
// weakness inherited from the stored credential format; changing it breaks
// every digest already on devices, so migrating to a salted KDF is a
// decision for the system owner, not this package.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/avdeev/go-device-vault/internal/entropy"
)

// TokenSize is the number of entropy bytes behind a secure token.
const TokenSize = 32

// cipherInfo domain-separates the data-encryption subkey from any other
// future use of the raw device key.
const cipherInfo = "go-device-vault/data-encryption/v1"

// cipherService is the private implementation of [CipherService].
type cipherService struct {
	keys KeyProvider
	src  entropy.Source
}

// NewCipherService constructs a [CipherService] over the given device-key
// provider and entropy source. The service is stateless per key: the key
// is fetched from keys on every operation that needs it.
func NewCipherService(keys KeyProvider, src entropy.Source) CipherService {
	return &cipherService{keys: keys, src: src}
}

// EncryptData implements [CipherService]. It marshals value to JSON, then
// encrypts it with the device-key-derived subkey using AES-256-GCM. The
// output is a Base64 (standard encoding) string of the blob:
// nonce (12 bytes) ‖ ciphertext.
func (c *cipherService) EncryptData(value any) (string, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	gcm, err := c.aead()
	if err != nil {
		return "", err
	}

	nonce, err := c.src.Bytes(gcm.NonceSize())
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptData implements [CipherService]. It Base64-decodes blob, splits
// out the nonce, decrypts and authenticates the ciphertext, and unmarshals
// the resulting JSON into target. Every failure mode collapses into
// [ErrDecryptionFailed] so callers cannot accidentally leak cipher
// internals to users or logs.
func (c *cipherService) DecryptData(blob string, target any) error {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return ErrDecryptionFailed
	}

	gcm, err := c.aead()
	if err != nil {
		return err
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return ErrDecryptionFailed
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return ErrDecryptionFailed
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return ErrDecryptionFailed
	}

	return nil
}

// HashPassword implements [CipherService]. No key material is involved.
func (c *cipherService) HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// GenerateSecureToken implements [CipherService]. It delegates directly to
// the entropy source, bypassing the device key entirely.
func (c *cipherService) GenerateSecureToken() (string, error) {
	raw, err := c.src.Bytes(TokenSize)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// aead builds the AES-256-GCM cipher for the current device key. The
// cipher key is derived from the device key via HKDF-SHA256 with a fixed
// info string, so the raw key never touches the cipher directly.
func (c *cipherService) aead() (cipher.AEAD, error) {
	deviceKey, err := c.keys.Key()
	if err != nil {
		return nil, fmt.Errorf("obtain device key: %w", err)
	}

	subKey := make([]byte, 32)
	kdf := hkdf.New(sha256.New, deviceKey, nil, []byte(cipherInfo))
	if _, err := io.ReadFull(kdf, subKey); err != nil {
		return nil, fmt.Errorf("derive cipher key: %w", err)
	}

	block, err := aes.NewCipher(subKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
