package crypto

import (
	"encoding/base64"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/avdeev/go-device-vault/internal/devicekey"
	"github.com/avdeev/go-device-vault/internal/entropy"
	"github.com/avdeev/go-device-vault/internal/keystore"
	"github.com/avdeev/go-device-vault/internal/logger"
)

func newTestService(t *testing.T, store keystore.KeyStore) CipherService {
	t.Helper()
	src := entropy.NewSystemSource()
	keys := devicekey.NewManager(store, src, logger.Nop())
	return NewCipherService(keys, src)
}

func TestEncryptDecrypt_RoundTripStruct(t *testing.T) {
	svc := newTestService(t, keystore.NewMemoryStore())

	type profile struct {
		Email string   `json:"email"`
		Age   int      `json:"age"`
		Tags  []string `json:"tags"`
	}
	in := profile{Email: "x@y.com", Age: 42, Tags: []string{"a", "b"}}

	blob, err := svc.EncryptData(in)
	if err != nil {
		t.Fatalf("EncryptData error: %v", err)
	}
	if blob == "" {
		t.Fatalf("expected non-empty blob")
	}

	var out profile
	if err := svc.DecryptData(blob, &out); err != nil {
		t.Fatalf("DecryptData error: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestEncryptDecrypt_RoundTripMap(t *testing.T) {
	svc := newTestService(t, keystore.NewMemoryStore())

	in := map[string]any{"a": float64(1)}

	blob, err := svc.EncryptData(in)
	if err != nil {
		t.Fatalf("EncryptData error: %v", err)
	}

	var out map[string]any
	if err := svc.DecryptData(blob, &out); err != nil {
		t.Fatalf("DecryptData error: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round-trip mismatch: got %v, want %v", out, in)
	}
}

func TestEncryptData_ProvisionsKeyOnFirstUse(t *testing.T) {
	store := keystore.NewMemoryStore()
	svc := newTestService(t, store)

	if store.Len() != 0 {
		t.Fatalf("fresh keystore should be empty")
	}

	blob, err := svc.EncryptData(map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("EncryptData error: %v", err)
	}
	if blob == "" {
		t.Fatalf("expected non-empty blob")
	}
	if store.Len() != 1 {
		t.Fatalf("expected exactly one keystore entry after first encryption, got %d", store.Len())
	}

	var out map[string]int
	if err := svc.DecryptData(blob, &out); err != nil {
		t.Fatalf("DecryptData error: %v", err)
	}
	if out["a"] != 1 {
		t.Fatalf("decrypted value mismatch: %v", out)
	}
}

func TestDecryptData_TamperedCiphertextFails(t *testing.T) {
	svc := newTestService(t, keystore.NewMemoryStore())

	blob, err := svc.EncryptData(map[string]string{"secret": "value"})
	if err != nil {
		t.Fatalf("EncryptData error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("decode blob: %v", err)
	}

	// Flip one bit in every byte position in turn; all must fail.
	for i := range raw {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0x01

		var out map[string]string
		err := svc.DecryptData(base64.StdEncoding.EncodeToString(tampered), &out)
		if !errors.Is(err, ErrDecryptionFailed) {
			t.Fatalf("byte %d: error = %v, want ErrDecryptionFailed", i, err)
		}
	}
}

func TestDecryptData_WrongKeyFails(t *testing.T) {
	svc1 := newTestService(t, keystore.NewMemoryStore())
	svc2 := newTestService(t, keystore.NewMemoryStore())

	blob, err := svc1.EncryptData("payload")
	if err != nil {
		t.Fatalf("EncryptData error: %v", err)
	}

	var out string
	if err := svc2.DecryptData(blob, &out); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("error = %v, want ErrDecryptionFailed", err)
	}
}

func TestDecryptData_MalformedInputFails(t *testing.T) {
	svc := newTestService(t, keystore.NewMemoryStore())

	for _, blob := range []string{"", "not-base64!!!", base64.StdEncoding.EncodeToString([]byte("short"))} {
		var out any
		if err := svc.DecryptData(blob, &out); !errors.Is(err, ErrDecryptionFailed) {
			t.Fatalf("blob %q: error = %v, want ErrDecryptionFailed", blob, err)
		}
	}
}

func TestHashPassword_DeterministicAndDistinct(t *testing.T) {
	svc := newTestService(t, keystore.NewMemoryStore())

	d1 := svc.HashPassword("correct horse battery staple")
	d2 := svc.HashPassword("correct horse battery staple")
	if d1 != d2 {
		t.Fatalf("expected identical digests for identical input")
	}
	if len(d1) != 64 {
		t.Fatalf("digest length = %d, want 64 hex chars", len(d1))
	}
	if d1 != strings.ToLower(d1) {
		t.Fatalf("digest must be lowercase hex")
	}

	d3 := svc.HashPassword("a different password")
	if d1 == d3 {
		t.Fatalf("expected different digests for different inputs")
	}
}

func TestGenerateSecureToken_LengthAndUniqueness(t *testing.T) {
	svc := newTestService(t, keystore.NewMemoryStore())

	t1, err := svc.GenerateSecureToken()
	if err != nil {
		t.Fatalf("GenerateSecureToken error: %v", err)
	}
	t2, err := svc.GenerateSecureToken()
	if err != nil {
		t.Fatalf("GenerateSecureToken error: %v", err)
	}

	if len(t1) != 64 || len(t2) != 64 {
		t.Fatalf("token lengths = %d, %d; want 64", len(t1), len(t2))
	}
	if t1 == t2 {
		t.Fatalf("expected two tokens to differ")
	}
}

func TestDecryptData_BlobsSurviveProcessRestart(t *testing.T) {
	store := keystore.NewMemoryStore()

	svc := newTestService(t, store)
	blob, err := svc.EncryptData(map[string]string{"k": "v"})
	if err != nil {
		t.Fatalf("EncryptData error: %v", err)
	}

	// Fresh manager and service over the same keystore simulates a
	// process restart.
	restarted := newTestService(t, store)

	var out map[string]string
	if err := restarted.DecryptData(blob, &out); err != nil {
		t.Fatalf("DecryptData after restart error: %v", err)
	}
	if out["k"] != "v" {
		t.Fatalf("decrypted value mismatch: %v", out)
	}
}
