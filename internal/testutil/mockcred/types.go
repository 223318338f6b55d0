// Package mockcred provides types and utilities for a mock credential
// service used in testing the go-cred-store client.
package mockcred

import (
	"sync"
	"time"
)

// StoredCredential is one stored version of a credential.
type StoredCredential struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Value            any       `json:"value"`
	VersionCreatedAt time.Time `json:"version_created_at"`
}

// StoredPermission is a permission entry attached to a credential.
type StoredPermission struct {
	Actor      string   `json:"actor"`
	Operations []string `json:"operations"`
}

// SetRequest is the request body for PUT /api/v1/data.
type SetRequest struct {
	Overwrite             bool               `json:"overwrite"`
	Name                  string             `json:"name"`
	Type                  string             `json:"type"`
	Value                 any                `json:"value"`
	AdditionalPermissions []StoredPermission `json:"additional_permissions,omitempty"`
}

// DataResponse is the envelope for GET /api/v1/data.
type DataResponse struct {
	Data []StoredCredential `json:"data"`
}

// PermissionsPayload is both the GET response and the POST request body for
// /api/v1/permissions.
type PermissionsPayload struct {
	CredentialName string             `json:"credential_name"`
	Permissions    []StoredPermission `json:"permissions"`
}

// ErrorResponse is the error body returned by the mock API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// State holds the internal mock server state.
type State struct {
	mu sync.RWMutex

	// credentials maps full credential name to its versions, newest first.
	credentials map[string][]StoredCredential

	// permissions maps full credential name to its attached permissions.
	permissions map[string][]StoredPermission

	nextID int64
}

// NewState creates a new State instance for the mock server.
func NewState() *State {
	return &State{
		credentials: make(map[string][]StoredCredential),
		permissions: make(map[string][]StoredPermission),
		nextID:      1,
	}
}
