// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-store/internal/adapter"
	"github.com/MKhiriev/go-cred-store/internal/logger"
	"github.com/MKhiriev/go-cred-store/internal/store"
	"github.com/MKhiriev/go-cred-store/models"
)

type clientCredentialService struct {
	repo    store.CredentialCacheRepository
	adapter adapter.ServerAdapter
	cache   ClientCacheService
}

func NewClientCredentialService(repo store.CredentialCacheRepository, serverAdapter adapter.ServerAdapter, cache ClientCacheService) ClientCredentialService {
	return &clientCredentialService{
		repo:    repo,
		adapter: serverAdapter,
		cache:   cache,
	}
}

// SetPassword implements [ClientCredentialService].
func (s *clientCredentialService) SetPassword(ctx context.Context, name models.CredentialName, password string, overwrite bool, additional []models.Permission) (models.Credential, error) {
	req, err := models.NewWriteRequestBuilder().
		WithName(name).
		WithPasswordValue(password).
		WithOverwrite(overwrite).
		WithAdditionalPermissions(additional).
		Build()
	if err != nil {
		return models.Credential{}, fmt.Errorf("build password write request: %w", err)
	}

	return s.set(ctx, req)
}

// SetJSON implements [ClientCredentialService].
func (s *clientCredentialService) SetJSON(ctx context.Context, name models.CredentialName, value map[string]any, overwrite bool, additional []models.Permission) (models.Credential, error) {
	req, err := models.NewWriteRequestBuilder().
		WithName(name).
		WithJSONValue(value).
		WithOverwrite(overwrite).
		WithAdditionalPermissions(additional).
		Build()
	if err != nil {
		return models.Credential{}, fmt.Errorf("build json write request: %w", err)
	}

	return s.set(ctx, req)
}

func (s *clientCredentialService) set(ctx context.Context, req models.WriteRequest) (models.Credential, error) {
	cred, err := s.adapter.Write(ctx, req)
	if err != nil {
		return models.Credential{}, fmt.Errorf("write credential to server: %w", err)
	}

	if err = s.refreshCache(ctx, cred); err != nil {
		return models.Credential{}, err
	}

	return cred, nil
}

// Get implements [ClientCredentialService]. The server is authoritative; the
// sealed local copy is consulted only when the server cannot answer at all.
func (s *clientCredentialService) Get(ctx context.Context, name string) (models.Credential, error) {
	cred, err := s.adapter.GetByName(ctx, name)
	if err == nil {
		// refresh failures must not break a successful read
		if cacheErr := s.refreshCache(ctx, cred); cacheErr != nil {
			logger.FromContext(ctx).Warn().
				Err(cacheErr).
				Str("func", "clientCredentialService.Get").
				Str("name", name).
				Msg("failed to refresh local cache after server read")
		}
		return cred, nil
	}

	if !serverUnavailable(err) {
		return models.Credential{}, err
	}

	entry, cacheErr := s.repo.GetCredential(ctx, name)
	if errors.Is(cacheErr, store.ErrCredentialNotFound) {
		return models.Credential{}, fmt.Errorf("%w: server unreachable (%w)", ErrNotCached, err)
	}
	if cacheErr != nil {
		return models.Credential{}, fmt.Errorf("read credential from local cache: %w", cacheErr)
	}

	cred, cacheErr = s.cache.OpenCredential(ctx, entry)
	if cacheErr != nil {
		return models.Credential{}, cacheErr
	}

	logger.FromContext(ctx).Warn().
		Err(err).
		Str("func", "clientCredentialService.Get").
		Str("name", name).
		Msg("server unreachable, served credential from local cache")

	return cred, nil
}

// GetVersions implements [ClientCredentialService].
func (s *clientCredentialService) GetVersions(ctx context.Context, name string) ([]models.Credential, error) {
	versions, err := s.adapter.GetVersionsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get credential versions from server: %w", err)
	}

	return versions, nil
}

// Delete implements [ClientCredentialService]. The cache entry is dropped
// even when the server no longer knows the credential, so a 404 still cleans
// up local state.
func (s *clientCredentialService) Delete(ctx context.Context, name string) error {
	err := s.adapter.Delete(ctx, name)
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("delete credential on server: %w", err)
	}

	if cacheErr := s.repo.DeleteCredential(ctx, name); cacheErr != nil && !errors.Is(cacheErr, store.ErrCredentialNotFound) {
		return fmt.Errorf("delete credential from local cache: %w", cacheErr)
	}

	return err
}

// ListCached implements [ClientCredentialService].
func (s *clientCredentialService) ListCached(ctx context.Context) ([]models.Credential, error) {
	entries, err := s.repo.GetAllCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local cache: %w", err)
	}

	creds := make([]models.Credential, 0, len(entries))
	for _, entry := range entries {
		cred, openErr := s.cache.OpenCredential(ctx, entry)
		if openErr != nil {
			return nil, openErr
		}
		creds = append(creds, cred)
	}

	return creds, nil
}

// Permissions implements [ClientCredentialService].
func (s *clientCredentialService) Permissions(ctx context.Context, name string) (models.PermissionsResponse, error) {
	perms, err := s.adapter.GetPermissions(ctx, name)
	if err != nil {
		return models.PermissionsResponse{}, fmt.Errorf("get permissions from server: %w", err)
	}

	return perms, nil
}

// AddPermissions implements [ClientCredentialService].
func (s *clientCredentialService) AddPermissions(ctx context.Context, name string, permissions []models.Permission) error {
	err := s.adapter.AddPermissions(ctx, models.PermissionsRequest{
		CredentialName: name,
		Permissions:    permissions,
	})
	if err != nil {
		return fmt.Errorf("add permissions on server: %w", err)
	}

	return nil
}

func (s *clientCredentialService) refreshCache(ctx context.Context, cred models.Credential) error {
	entry, err := s.cache.SealCredential(ctx, cred)
	if err != nil {
		return err
	}

	if err = s.repo.SaveCredential(ctx, entry); err != nil {
		return fmt.Errorf("save credential to local cache: %w", err)
	}

	return nil
}

// serverUnavailable reports whether err describes a failure to reach the
// server rather than a definite answer from it. Client-side rejections
// (400/401/403/404/409) are answers and must not trigger the cache fallback.
func serverUnavailable(err error) bool {
	switch {
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict):
		return false
	}
	return true
}
