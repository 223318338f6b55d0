package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cred-store/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientCacheService seals and opens locally cached credential copies using
// the key derived from the user's cache passphrase. Init must be called
// before any other method.
type ClientCacheService interface {
	// Init loads the key-derivation salt from the cache database (creating
	// and persisting a fresh one for a new cache) and derives the cache key
	// from the configured passphrase.
	Init(ctx context.Context) error

	// SealCredential encrypts cred into a cache entry ready for local
	// persistence. Returns [ErrCacheKeyNotInitialised] if Init has not been
	// called.
	SealCredential(ctx context.Context, cred models.Credential) (models.CachedCredential, error)

	// OpenCredential decrypts a cache entry back into the credential it was
	// sealed from. A wrong passphrase surfaces as a decryption error.
	OpenCredential(ctx context.Context, entry models.CachedCredential) (models.Credential, error)
}

// ClientCredentialService is the client-side contract for managing
// credentials. Write operations go to the server and refresh the local cache
// in the same call; reads prefer the server and fall back to the cache when
// the server cannot be reached.
type ClientCredentialService interface {
	// SetPassword stores a password credential under name. overwrite
	// controls whether an existing value is replaced or returned unchanged.
	// additional permissions, when present, are attached to the write
	// request.
	SetPassword(ctx context.Context, name models.CredentialName, password string, overwrite bool, additional []models.Permission) (models.Credential, error)

	// SetJSON stores a JSON credential under name with the same overwrite
	// and permission semantics as SetPassword.
	SetJSON(ctx context.Context, name models.CredentialName, value map[string]any, overwrite bool, additional []models.Permission) (models.Credential, error)

	// Get returns the current version of the named credential. When the
	// server is unreachable the sealed local copy is opened and returned
	// instead.
	Get(ctx context.Context, name string) (models.Credential, error)

	// GetVersions returns every stored version of the named credential,
	// newest first. Versions are never cached locally.
	GetVersions(ctx context.Context, name string) ([]models.Credential, error)

	// Delete removes the named credential from the server and drops the
	// local cache entry.
	Delete(ctx context.Context, name string) error

	// ListCached opens and returns every credential held in the local
	// cache, ordered by name.
	ListCached(ctx context.Context) ([]models.Credential, error)

	// Permissions returns the permissions attached to the named credential.
	Permissions(ctx context.Context, name string) (models.PermissionsResponse, error)

	// AddPermissions attaches additional permissions to the named
	// credential.
	AddPermissions(ctx context.Context, name string, permissions []models.Permission) error
}

// ClientRefreshJob periodically re-fetches cached credentials from the server
// so local sealed copies stay current for offline fallback.
type ClientRefreshJob interface {
	// Start launches the background refresh loop. Calling Start on a running
	// job restarts it with the new interval.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background loop and waits for it to exit.
	Stop()
}
