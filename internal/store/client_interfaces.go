package store

import (
	"context"

	"github.com/MKhiriev/go-cred-store/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialCacheRepository is the low-level local credential cache
// repository. Values are stored sealed; the repository never sees plaintext.
type CredentialCacheRepository interface {
	// SaveCredential inserts or replaces the cache entry for entry.Name.
	SaveCredential(ctx context.Context, entry models.CachedCredential) error

	// GetCredential returns the cache entry for the given full credential
	// name, or [ErrCredentialNotFound].
	GetCredential(ctx context.Context, name string) (models.CachedCredential, error)

	// GetAllCredentials returns every cache entry ordered by name.
	GetAllCredentials(ctx context.Context) ([]models.CachedCredential, error)

	// DeleteCredential removes the cache entry for the given name. Deleting
	// an absent entry returns [ErrCredentialNotFound].
	DeleteCredential(ctx context.Context, name string) error

	// GetKeychainSalt returns the salt the cache key is derived with, or
	// [ErrSaltNotFound] for a fresh cache database.
	GetKeychainSalt(ctx context.Context) ([]byte, error)

	// SaveKeychainSalt persists the key-derivation salt, replacing any
	// previous value.
	SaveKeychainSalt(ctx context.Context, salt []byte) error
}
