package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService performs the client-side cryptography for the local
// credential cache. It knows nothing about the network, the database, or
// credential names; its only job is deriving keys and sealing values.
//
// Usage:
//
//	salt, _ = GenerateCacheSalt()            (once per cache database)
//	key     = DeriveCacheKey(passphrase, salt)
//	blob, _ = EncryptCredential(value, key)  (per cached credential)
type KeyChainService interface {
	// GenerateCacheSalt returns a fresh random salt (16 bytes / 128 bits).
	// The salt is not a secret and is stored in the cache database in the
	// clear; it exists so that identical passphrases derive distinct keys.
	GenerateCacheSalt() ([]byte, error)

	// DeriveCacheKey derives a 256-bit cache key from the user's
	// passphrase and salt via Argon2id. The key lives only in process
	// memory and is never written to disk.
	DeriveCacheKey(passphrase string, salt []byte) []byte

	// EncryptCredential serializes value to JSON and seals it with the
	// cache key using AES-256-GCM. Returns a base64-encoded blob
	// (nonce || ciphertext) safe to persist in the cache database.
	EncryptCredential(value any, key []byte) (string, error)

	// DecryptCredential opens a base64-encoded blob with the cache key and
	// unmarshals the plaintext JSON into target (same contract as
	// json.Unmarshal). Authentication failure almost always means a wrong
	// passphrase.
	DecryptCredential(encryptedB64 string, key []byte, target any) error
}
