package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCacheSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateCacheSalt()
	if err != nil {
		t.Fatalf("GenerateCacheSalt error: %v", err)
	}
	s2, err := svc.GenerateCacheSalt()
	if err != nil {
		t.Fatalf("GenerateCacheSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if len(s2) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveCacheKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()

	passphrase := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.DeriveCacheKey(passphrase, salt)
	k2 := svc.DeriveCacheKey(passphrase, salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("same passphrase and salt must derive the same key")
	}
}

func TestDeriveCacheKey_DifferentSaltsDifferentKeys(t *testing.T) {
	svc := NewKeyChainService()

	passphrase := "correct horse battery staple"
	k1 := svc.DeriveCacheKey(passphrase, bytes.Repeat([]byte{0x01}, 16))
	k2 := svc.DeriveCacheKey(passphrase, bytes.Repeat([]byte{0x02}, 16))

	if bytes.Equal(k1, k2) {
		t.Fatalf("different salts must derive different keys")
	}
}

func TestEncryptDecryptCredential_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()
	key := svc.DeriveCacheKey("pass", bytes.Repeat([]byte{0x11}, 16))

	type cached struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	in := cached{Name: "/prod/db/password", Value: "s3cr3t"}

	blob, err := svc.EncryptCredential(in, key)
	if err != nil {
		t.Fatalf("EncryptCredential error: %v", err)
	}
	if strings.Contains(blob, in.Value) {
		t.Fatalf("ciphertext must not contain the plaintext value")
	}

	var out cached
	if err := svc.DecryptCredential(blob, key, &out); err != nil {
		t.Fatalf("DecryptCredential error: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestDecryptCredential_WrongKeyFails(t *testing.T) {
	svc := NewKeyChainService()
	key := svc.DeriveCacheKey("pass", bytes.Repeat([]byte{0x11}, 16))
	wrong := svc.DeriveCacheKey("other", bytes.Repeat([]byte{0x11}, 16))

	blob, err := svc.EncryptCredential(map[string]string{"k": "v"}, key)
	if err != nil {
		t.Fatalf("EncryptCredential error: %v", err)
	}

	var target map[string]string
	if err := svc.DecryptCredential(blob, wrong, &target); err == nil {
		t.Fatalf("expected authentication failure with the wrong key")
	}
}

func TestDecryptCredential_TruncatedBlobFails(t *testing.T) {
	svc := NewKeyChainService()
	key := svc.DeriveCacheKey("pass", bytes.Repeat([]byte{0x11}, 16))

	var target map[string]string
	if err := svc.DecryptCredential("QUJD", key, &target); err == nil {
		t.Fatalf("expected error for a blob shorter than the nonce")
	}
}

func TestDecryptCredential_NotBase64Fails(t *testing.T) {
	svc := NewKeyChainService()
	key := svc.DeriveCacheKey("pass", bytes.Repeat([]byte{0x11}, 16))

	var target map[string]string
	if err := svc.DecryptCredential("%%%not-base64%%%", key, &target); err == nil {
		t.Fatalf("expected error for malformed base64 input")
	}
}
