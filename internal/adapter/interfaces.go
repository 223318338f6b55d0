// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote credential service.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) speaking the credential service's v1 API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cred-store/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the credential
// service. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Write sends a set request for a single credential. The server creates
	// a new version (or returns the existing one when req is not marked
	// overwrite) and responds with the stored credential. Returns an error
	// if the request fails or the server responds with a non-2xx status.
	Write(ctx context.Context, req models.WriteRequest) (models.Credential, error)

	// GetByName fetches the current version of the named credential.
	// Returns [ErrNotFound] (wrapped) when no credential exists under name.
	GetByName(ctx context.Context, name string) (models.Credential, error)

	// GetVersionsByName fetches all stored versions of the named credential,
	// newest first.
	GetVersionsByName(ctx context.Context, name string) ([]models.Credential, error)

	// GetByID fetches a single credential version by its server-assigned
	// identifier.
	GetByID(ctx context.Context, id string) (models.Credential, error)

	// Delete removes the named credential and all of its versions. Returns
	// [ErrNotFound] (wrapped) when no credential exists under name.
	Delete(ctx context.Context, name string) error

	// GetPermissions fetches the permissions attached to the named
	// credential.
	GetPermissions(ctx context.Context, credentialName string) (models.PermissionsResponse, error)

	// AddPermissions attaches additional permissions to an existing
	// credential.
	AddPermissions(ctx context.Context, req models.PermissionsRequest) error
}
