package models

import "time"

// Credential is the server's representation of a stored credential version,
// returned by write and read operations.
type Credential struct {
	// ID is the server-assigned identifier of this credential version.
	ID string `json:"id"`

	// Name is the full slash-separated credential name.
	Name string `json:"name"`

	// Type is the canonical value-type token ("password", "json").
	Type string `json:"type"`

	// Value is the credential value; its shape depends on Type.
	Value any `json:"value"`

	// VersionCreatedAt is when this version of the credential was written.
	VersionCreatedAt time.Time `json:"version_created_at"`
}

// CredentialData is the envelope returned by name-based credential lookups.
type CredentialData struct {
	Data []Credential `json:"data"`
}

// PermissionsResponse is the envelope returned by permission lookups.
type PermissionsResponse struct {
	CredentialName string       `json:"credential_name"`
	Permissions    []Permission `json:"permissions"`
}

// PermissionsRequest is the payload for attaching permissions to an
// existing credential.
type PermissionsRequest struct {
	CredentialName string       `json:"credential_name"`
	Permissions    []Permission `json:"permissions"`
}
