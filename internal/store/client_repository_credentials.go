// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-store/internal/logger"
	"github.com/MKhiriev/go-cred-store/models"
)

// credentialCacheRepository is the SQLite-backed implementation of
// [CredentialCacheRepository]. It executes all cache CRUD operations against
// the "credentials" and "cache_meta" tables using the embedded [*DB]
// connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (credential name, affected rows, etc.).
type credentialCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewCredentialCacheRepository(db *DB, logger *logger.Logger) CredentialCacheRepository {
	return &credentialCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *credentialCacheRepository) SaveCredential(ctx context.Context, entry models.CachedCredential) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCredentialQuery(entry)
	if err != nil {
		log.Err(err).
			Str("func", "credentialCacheRepository.SaveCredential").
			Str("name", entry.Name).
			Msg("failed to build upsert query for cached credential")
		return err
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialCacheRepository.SaveCredential").
			Str("name", entry.Name).
			Msg("failed to execute upsert for cached credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().
			Str("func", "credentialCacheRepository.SaveCredential").
			Str("name", entry.Name).
			Msg("cached credential was not saved")
		return ErrCredentialNotSaved
	}

	return nil
}

func (c *credentialCacheRepository) GetCredential(ctx context.Context, name string) (models.CachedCredential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialQuery(name)
	if err != nil {
		log.Err(err).
			Str("func", "credentialCacheRepository.GetCredential").
			Str("name", name).
			Msg("failed to build select query for cached credential")
		return models.CachedCredential{}, err
	}

	var entry models.CachedCredential
	row := c.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&entry.Name, &entry.Type, &entry.EncryptedValue, &entry.UpdatedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.CachedCredential{}, ErrCredentialNotFound
		}
		log.Err(scanErr).
			Str("func", "credentialCacheRepository.GetCredential").
			Str("name", name).
			Msg("failed to scan cached credential row")
		return models.CachedCredential{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return entry, nil
}

func (c *credentialCacheRepository) GetAllCredentials(ctx context.Context) ([]models.CachedCredential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllCredentialsQuery()
	if err != nil {
		log.Err(err).
			Str("func", "credentialCacheRepository.GetAllCredentials").
			Msg("failed to build select query for all cached credentials")
		return nil, err
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialCacheRepository.GetAllCredentials").
			Msg("failed to execute query for all cached credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.CachedCredential
	for rows.Next() {
		var entry models.CachedCredential

		scanErr := rows.Scan(&entry.Name, &entry.Type, &entry.EncryptedValue, &entry.UpdatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "credentialCacheRepository.GetAllCredentials").
				Msg("failed to scan cached credential rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "credentialCacheRepository.GetAllCredentials").
			Msg("row iteration over cached credentials failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

func (c *credentialCacheRepository) DeleteCredential(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentialQuery(name)
	if err != nil {
		log.Err(err).
			Str("func", "credentialCacheRepository.DeleteCredential").
			Str("name", name).
			Msg("failed to build delete query for cached credential")
		return err
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialCacheRepository.DeleteCredential").
			Str("name", name).
			Msg("failed to execute delete for cached credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

func (c *credentialCacheRepository) GetKeychainSalt(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSaltQuery()
	if err != nil {
		log.Err(err).
			Str("func", "credentialCacheRepository.GetKeychainSalt").
			Msg("failed to build select query for keychain salt")
		return nil, err
	}

	var salt []byte
	row := c.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&salt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil, ErrSaltNotFound
		}
		log.Err(scanErr).
			Str("func", "credentialCacheRepository.GetKeychainSalt").
			Msg("failed to scan keychain salt row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return salt, nil
}

func (c *credentialCacheRepository) SaveKeychainSalt(ctx context.Context, salt []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSaltQuery(salt)
	if err != nil {
		log.Err(err).
			Str("func", "credentialCacheRepository.SaveKeychainSalt").
			Msg("failed to build upsert query for keychain salt")
		return err
	}

	if _, err := c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "credentialCacheRepository.SaveKeychainSalt").
			Msg("failed to execute upsert for keychain salt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
