package models

import "time"

// CachedCredential is a locally cached copy of a credential. The value is
// stored sealed with the cache key; only the keychain can open it.
type CachedCredential struct {
	// Name is the full slash-separated credential name, unique per cache.
	Name string `json:"name"`

	// Type is the canonical value-type token ("password", "json").
	Type string `json:"type"`

	// EncryptedValue is the base64 AES-GCM blob holding the value.
	EncryptedValue string `json:"encrypted_value"`

	// UpdatedAt is when this cache entry was last written.
	UpdatedAt time.Time `json:"updated_at"`
}
