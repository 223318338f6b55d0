// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"strings"
)

// emptyPermissions is the shared immutable sequence returned for write
// requests built without any additional permissions.
var emptyPermissions = []Permission{}

// WriteRequest is the immutable payload describing a credential write:
// name, overwrite flag, exactly one typed value, and zero or more
// additional permissions. Values are produced by [WriteRequestBuilder] and
// are safe for unrestricted concurrent reads once built.
type WriteRequest struct {
	overwrite             bool
	name                  CredentialName
	valueType             ValueType
	value                 any
	additionalPermissions []Permission
}

// IsOverwrite reports whether the write should update an existing
// credential rather than fail on conflict.
func (r WriteRequest) IsOverwrite() bool {
	return r.overwrite
}

// Name returns the credential name as a plain string, empty if the builder
// was never given a name.
func (r WriteRequest) Name() string {
	return r.name.Name()
}

// Type returns the canonical value-type token, empty if no typed value
// setter was called.
func (r WriteRequest) Type() string {
	return r.valueType.Type()
}

// Value returns the credential value: a string for password credentials, a
// map for JSON credentials. Map values are copied so the stored request
// cannot be mutated through the return value.
func (r WriteRequest) Value() any {
	if m, ok := r.value.(map[string]any); ok {
		return maps.Clone(m)
	}
	return r.value
}

// AdditionalPermissions returns a copy of the permissions attached to the
// write, in the order they were added. The result is never nil.
func (r WriteRequest) AdditionalPermissions() []Permission {
	if len(r.additionalPermissions) == 0 {
		return emptyPermissions
	}
	return append([]Permission(nil), r.additionalPermissions...)
}

// Equal reports structural equality over all fields.
func (r WriteRequest) Equal(other WriteRequest) bool {
	if r.overwrite != other.overwrite || r.name != other.name || r.valueType != other.valueType {
		return false
	}
	if !reflect.DeepEqual(r.value, other.value) {
		return false
	}
	if len(r.additionalPermissions) != len(other.additionalPermissions) {
		return false
	}
	for i, p := range r.additionalPermissions {
		if !p.Equal(other.additionalPermissions[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON renders the snake_case write payload. The name field is
// emitted unconditionally even when unset; additional_permissions is
// omitted entirely when empty.
func (r WriteRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireWriteRequest{
		Overwrite:             r.overwrite,
		Name:                  r.name.Name(),
		Type:                  r.valueType.Type(),
		Value:                 r.value,
		AdditionalPermissions: r.additionalPermissions,
	})
}

func (r WriteRequest) String() string {
	perms := make([]string, 0, len(r.additionalPermissions))
	for _, p := range r.additionalPermissions {
		perms = append(perms, p.String())
	}
	return fmt.Sprintf("WriteRequest{overwrite=%t, name=%s, valueType=%s, value=%v, additionalPermissions=[%s]}",
		r.overwrite, r.name.Name(), r.valueType.Type(), r.value, strings.Join(perms, " "))
}

type wireWriteRequest struct {
	Overwrite             bool         `json:"overwrite"`
	Name                  string       `json:"name"`
	Type                  string       `json:"type"`
	Value                 any          `json:"value"`
	AdditionalPermissions []Permission `json:"additional_permissions,omitempty"`
}

// WriteRequestBuilder accumulates the fields of a credential write and
// produces an immutable [WriteRequest]. Each setter validates its arguments
// immediately; violations are recorded on the builder and surfaced by
// [WriteRequestBuilder.Build], with no partial state mutation for the failed
// call. Builders are not safe for concurrent use.
//
// Calling more than one typed value setter keeps only the last call's
// value/type pair; Build never rejects a missing name or value. Both are
// deliberate carry-overs of the service API's permissive construction
// contract.
type WriteRequestBuilder struct {
	overwrite   bool
	name        CredentialName
	valueType   ValueType
	value       any
	permissions []Permission
	err         error
}

// NewWriteRequestBuilder returns an empty [WriteRequestBuilder].
func NewWriteRequestBuilder() *WriteRequestBuilder {
	return &WriteRequestBuilder{}
}

// WithPasswordValue sets the value to a password credential: a single
// string. The value-type becomes [ValueTypePassword]. value must be
// non-empty.
func (b *WriteRequestBuilder) WithPasswordValue(value string) *WriteRequestBuilder {
	if value == "" {
		return b.fail(fmt.Errorf("%w: value must not be empty", ErrInvalidArgument))
	}
	b.valueType = ValueTypePassword
	b.value = value
	return b
}

// WithJSONValue sets the value to a JSON credential: a key/value document.
// The map is copied, so later caller mutations do not affect the builder.
// The value-type becomes [ValueTypeJSON]. value must be non-nil; an empty
// map is allowed.
func (b *WriteRequestBuilder) WithJSONValue(value map[string]any) *WriteRequestBuilder {
	if value == nil {
		return b.fail(fmt.Errorf("%w: value must not be nil", ErrInvalidArgument))
	}
	b.valueType = ValueTypeJSON
	b.value = maps.Clone(value)
	return b
}

// WithName sets the credential name. name must not be the zero value.
func (b *WriteRequestBuilder) WithName(name CredentialName) *WriteRequestBuilder {
	if name.IsZero() {
		return b.fail(fmt.Errorf("%w: name must not be empty", ErrInvalidArgument))
	}
	b.name = name
	return b
}

// WithOverwrite sets the overwrite flag. The default is false.
func (b *WriteRequestBuilder) WithOverwrite(overwrite bool) *WriteRequestBuilder {
	b.overwrite = overwrite
	return b
}

// WithAdditionalPermission appends one permission, preserving call order.
func (b *WriteRequestBuilder) WithAdditionalPermission(permission Permission) *WriteRequestBuilder {
	b.initPermissions()
	b.permissions = append(b.permissions, permission)
	return b
}

// WithAdditionalPermissions appends a batch of permissions in the given
// order.
func (b *WriteRequestBuilder) WithAdditionalPermissions(permissions []Permission) *WriteRequestBuilder {
	b.initPermissions()
	b.permissions = append(b.permissions, permissions...)
	return b
}

// Err returns the first validation error recorded by a setter, or nil.
// It allows callers to fail fast without waiting for Build.
func (b *WriteRequestBuilder) Err() error {
	return b.err
}

// Build produces an immutable [WriteRequest] from the accumulated state.
// The permissions sequence follows the same zero/one/many policy as
// [PermissionBuilder.Build]; no two Build calls share mutable backing
// storage. Missing name or value is not rejected here. Build returns the
// first error recorded by a setter, if any.
func (b *WriteRequestBuilder) Build() (WriteRequest, error) {
	if b.err != nil {
		return WriteRequest{}, fmt.Errorf("build write request: %w", b.err)
	}

	var permissions []Permission
	switch len(b.permissions) {
	case 0:
		permissions = emptyPermissions
	case 1:
		permissions = []Permission{b.permissions[0]}
	default:
		permissions = append([]Permission(nil), b.permissions...)
	}

	value := b.value
	if m, ok := value.(map[string]any); ok {
		value = maps.Clone(m)
	}

	return WriteRequest{
		overwrite:             b.overwrite,
		name:                  b.name,
		valueType:             b.valueType,
		value:                 value,
		additionalPermissions: permissions,
	}, nil
}

func (b *WriteRequestBuilder) initPermissions() {
	if b.permissions == nil {
		b.permissions = make([]Permission, 0, 4)
	}
}

func (b *WriteRequestBuilder) fail(err error) *WriteRequestBuilder {
	b.err = errors.Join(b.err, err)
	return b
}
