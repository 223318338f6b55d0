// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cred-store/internal/crypto"
	"github.com/MKhiriev/go-cred-store/internal/store"
	"github.com/MKhiriev/go-cred-store/models"
)

type clientCacheService struct {
	repo       store.CredentialCacheRepository
	keychain   crypto.KeyChainService
	passphrase string

	key []byte
}

func NewClientCacheService(repo store.CredentialCacheRepository, keychain crypto.KeyChainService, passphrase string) ClientCacheService {
	return &clientCacheService{
		repo:       repo,
		keychain:   keychain,
		passphrase: passphrase,
	}
}

// Init implements [ClientCacheService]. For an existing cache it loads the
// stored salt; for a fresh one it generates and persists a new salt first.
// The cache key is then derived from the configured passphrase and kept in
// memory only.
func (c *clientCacheService) Init(ctx context.Context) error {
	salt, err := c.repo.GetKeychainSalt(ctx)
	if errors.Is(err, store.ErrSaltNotFound) {
		salt, err = c.keychain.GenerateCacheSalt()
		if err != nil {
			return fmt.Errorf("generate cache salt: %w", err)
		}
		if err = c.repo.SaveKeychainSalt(ctx, salt); err != nil {
			return fmt.Errorf("persist cache salt: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("load cache salt: %w", err)
	}

	c.key = c.keychain.DeriveCacheKey(c.passphrase, salt)
	return nil
}

// SealCredential implements [ClientCacheService]. The whole credential
// (id, name, type, value, version timestamp) is sealed into one blob so that
// nothing about the value leaks into the cache table.
func (c *clientCacheService) SealCredential(_ context.Context, cred models.Credential) (models.CachedCredential, error) {
	if c.key == nil {
		return models.CachedCredential{}, ErrCacheKeyNotInitialised
	}

	blob, err := c.keychain.EncryptCredential(cred, c.key)
	if err != nil {
		return models.CachedCredential{}, fmt.Errorf("seal credential %q: %w", cred.Name, err)
	}

	return models.CachedCredential{
		Name:           cred.Name,
		Type:           cred.Type,
		EncryptedValue: blob,
		UpdatedAt:      time.Now().UTC(),
	}, nil
}

// OpenCredential implements [ClientCacheService].
func (c *clientCacheService) OpenCredential(_ context.Context, entry models.CachedCredential) (models.Credential, error) {
	if c.key == nil {
		return models.Credential{}, ErrCacheKeyNotInitialised
	}

	var cred models.Credential
	if err := c.keychain.DecryptCredential(entry.EncryptedValue, c.key, &cred); err != nil {
		return models.Credential{}, fmt.Errorf("open cached credential %q: %w", entry.Name, err)
	}

	return cred, nil
}
