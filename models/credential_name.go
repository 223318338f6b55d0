// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// CredentialName identifies a credential in the remote service. Names are
// hierarchical: segments are joined with "/" and prefixed with a leading
// slash, e.g. NewCredentialName("team", "db", "password") is
// "/team/db/password".
//
// The zero value represents an unset name; [CredentialName.Name] returns an
// empty string for it.
type CredentialName struct {
	name string
}

// NewCredentialName builds a [CredentialName] from the given path segments.
func NewCredentialName(segments ...string) CredentialName {
	if len(segments) == 0 {
		return CredentialName{}
	}
	return CredentialName{name: "/" + strings.Join(segments, "/")}
}

// Name returns the full slash-separated name string.
func (n CredentialName) Name() string {
	return n.name
}

// IsZero reports whether the name is unset.
func (n CredentialName) IsZero() bool {
	return n.name == ""
}

// Equal reports structural equality with other.
func (n CredentialName) Equal(other CredentialName) bool {
	return n == other
}

func (n CredentialName) String() string {
	return n.name
}
