// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cred-store/models"
)

// keychainSaltKey is the cache_meta row holding the key-derivation salt.
const keychainSaltKey = "keychain_salt"

// credentialColumns lists the credentials table columns in scan order.
var credentialColumns = []string{"name", "type", "encrypted_value", "updated_at"}

// buildUpsertCredentialQuery builds an INSERT that replaces the existing
// cache entry on a name collision. SQLite uses ? placeholders, squirrel's
// default format.
func buildUpsertCredentialQuery(entry models.CachedCredential) (string, []any, error) {
	query, args, err := sq.
		Insert("credentials").
		Columns(credentialColumns...).
		Values(entry.Name, entry.Type, entry.EncryptedValue, entry.UpdatedAt).
		Suffix(`ON CONFLICT(name) DO UPDATE SET
			type            = excluded.type,
			encrypted_value = excluded.encrypted_value,
			updated_at      = excluded.updated_at`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectCredentialQuery builds a single-entry lookup by full name.
func buildSelectCredentialQuery(name string) (string, []any, error) {
	query, args, err := sq.
		Select(credentialColumns...).
		From("credentials").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectAllCredentialsQuery builds the full cache listing, ordered by
// name for stable output.
func buildSelectAllCredentialsQuery() (string, []any, error) {
	query, args, err := sq.
		Select(credentialColumns...).
		From("credentials").
		OrderBy("name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteCredentialQuery builds a delete by full name.
func buildDeleteCredentialQuery(name string) (string, []any, error) {
	query, args, err := sq.
		Delete("credentials").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectSaltQuery builds the keychain-salt lookup.
func buildSelectSaltQuery() (string, []any, error) {
	query, args, err := sq.
		Select("value").
		From("cache_meta").
		Where(sq.Eq{"key": keychainSaltKey}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertSaltQuery builds an INSERT that replaces any previously stored
// keychain salt.
func buildUpsertSaltQuery(salt []byte) (string, []any, error) {
	query, args, err := sq.
		Insert("cache_meta").
		Columns("key", "value").
		Values(keychainSaltKey, salt).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
