// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// emptyOperations is the shared immutable sequence returned for permissions
// built without any operations. Appending to it always reallocates, so it is
// safe to hand out to every caller.
var emptyOperations = []Operation{}

// Permission is the (actor, operation-set) pair describing what one
// principal may do with a credential. Values are produced by
// [PermissionBuilder] and are immutable once built; they are safe for
// unrestricted concurrent reads.
type Permission struct {
	actor      *Actor
	operations []Operation
}

// Actor returns the principal the permission applies to, or nil if the
// permission was built without one. Whether the server accepts an actorless
// permission is a service-side concern; it is representable here.
func (p Permission) Actor() *Actor {
	if p.actor == nil {
		return nil
	}
	a := *p.actor
	return &a
}

// Operations returns a copy of the operations granted to the actor, in the
// order they were added to the builder.
func (p Permission) Operations() []Operation {
	if len(p.operations) == 0 {
		return emptyOperations
	}
	return append([]Operation(nil), p.operations...)
}

// Equal reports structural equality over actor and operations.
func (p Permission) Equal(other Permission) bool {
	if (p.actor == nil) != (other.actor == nil) {
		return false
	}
	if p.actor != nil && *p.actor != *other.actor {
		return false
	}
	if len(p.operations) != len(other.operations) {
		return false
	}
	for i, op := range p.operations {
		if op != other.operations[i] {
			return false
		}
	}
	return true
}

// MarshalJSON renders the permission entry for the write payload: the actor
// identity token plus the operation tokens, never the Operation values
// themselves.
func (p Permission) MarshalJSON() ([]byte, error) {
	return json.Marshal(wirePermission{
		Actor:      p.actor,
		Operations: operationTokens(p.operations),
	})
}

// UnmarshalJSON decodes a permission entry returned by the server.
func (p *Permission) UnmarshalJSON(data []byte) error {
	var wire wirePermission
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	ops := make([]Operation, 0, len(wire.Operations))
	for _, token := range wire.Operations {
		ops = append(ops, Operation(token))
	}
	*p = Permission{actor: wire.Actor, operations: ops}
	return nil
}

func (p Permission) String() string {
	var sb strings.Builder
	sb.WriteString("Permission{actor=")
	if p.actor != nil {
		sb.WriteString(p.actor.Identity())
	} else {
		sb.WriteString("<nil>")
	}
	sb.WriteString(", operations=[")
	sb.WriteString(strings.Join(operationTokens(p.operations), " "))
	sb.WriteString("]}")
	return sb.String()
}

type wirePermission struct {
	Actor      *Actor   `json:"actor"`
	Operations []string `json:"operations"`
}

func operationTokens(ops []Operation) []string {
	tokens := make([]string, 0, len(ops))
	for _, op := range ops {
		tokens = append(tokens, op.Operation())
	}
	return tokens
}

// PermissionBuilder accumulates one actor and an ordered sequence of
// operations, then produces an immutable [Permission]. Each setter validates
// its arguments immediately; violations are recorded on the builder and
// surfaced by [PermissionBuilder.Build], with no partial state mutation for
// the failed call. Builders are not safe for concurrent use.
type PermissionBuilder struct {
	actor      *Actor
	operations []Operation
	err        error
}

// NewPermissionBuilder returns an empty [PermissionBuilder].
func NewPermissionBuilder() *PermissionBuilder {
	return &PermissionBuilder{}
}

// WithApp sets an application actor. appID must be non-empty, and no actor
// may have been set before.
func (b *PermissionBuilder) WithApp(appID string) *PermissionBuilder {
	if appID == "" {
		return b.fail(fmt.Errorf("%w: appID must not be empty", ErrInvalidArgument))
	}
	return b.setActor(AppActor(appID))
}

// WithUser sets a user actor. userID must be non-empty, and no actor may
// have been set before.
func (b *PermissionBuilder) WithUser(userID string) *PermissionBuilder {
	if userID == "" {
		return b.fail(fmt.Errorf("%w: userID must not be empty", ErrInvalidArgument))
	}
	return b.setActor(UserActor(userID))
}

// WithUserInZone sets a zone-scoped user actor. Both arguments must be
// non-empty, and no actor may have been set before.
func (b *PermissionBuilder) WithUserInZone(zoneID, userID string) *PermissionBuilder {
	if zoneID == "" {
		return b.fail(fmt.Errorf("%w: zoneID must not be empty", ErrInvalidArgument))
	}
	if userID == "" {
		return b.fail(fmt.Errorf("%w: userID must not be empty", ErrInvalidArgument))
	}
	return b.setActor(ZonedUserActor(zoneID, userID))
}

// WithClient sets an OAuth2 client actor. clientID must be non-empty, and no
// actor may have been set before.
func (b *PermissionBuilder) WithClient(clientID string) *PermissionBuilder {
	if clientID == "" {
		return b.fail(fmt.Errorf("%w: clientID must not be empty", ErrInvalidArgument))
	}
	return b.setActor(ClientActor(clientID))
}

// WithClientInZone sets a zone-scoped OAuth2 client actor. Both arguments
// must be non-empty, and no actor may have been set before.
func (b *PermissionBuilder) WithClientInZone(zoneID, clientID string) *PermissionBuilder {
	if zoneID == "" {
		return b.fail(fmt.Errorf("%w: zoneID must not be empty", ErrInvalidArgument))
	}
	if clientID == "" {
		return b.fail(fmt.Errorf("%w: clientID must not be empty", ErrInvalidArgument))
	}
	return b.setActor(ZonedClientActor(zoneID, clientID))
}

// WithOperation appends a single operation, preserving call order.
func (b *PermissionBuilder) WithOperation(op Operation) *PermissionBuilder {
	b.initOperations()
	b.operations = append(b.operations, op)
	return b
}

// WithOperations appends a batch of operations in the given order.
func (b *PermissionBuilder) WithOperations(ops ...Operation) *PermissionBuilder {
	b.initOperations()
	b.operations = append(b.operations, ops...)
	return b
}

// Err returns the first validation error recorded by a setter, or nil.
// It allows callers to fail fast without waiting for Build.
func (b *PermissionBuilder) Err() error {
	return b.err
}

// Build produces an immutable [Permission] from the accumulated state.
// Zero operations yield a shared empty sequence, one operation a fresh
// single-element sequence, and two or more a copy of the accumulator; no two
// Build calls share mutable backing storage. A nil actor is allowed.
// Build returns the first error recorded by a setter, if any.
func (b *PermissionBuilder) Build() (Permission, error) {
	if b.err != nil {
		return Permission{}, fmt.Errorf("build permission: %w", b.err)
	}

	var ops []Operation
	switch len(b.operations) {
	case 0:
		ops = emptyOperations
	case 1:
		ops = []Operation{b.operations[0]}
	default:
		ops = append([]Operation(nil), b.operations...)
	}

	var actor *Actor
	if b.actor != nil {
		a := *b.actor
		actor = &a
	}

	return Permission{actor: actor, operations: ops}, nil
}

func (b *PermissionBuilder) setActor(a Actor) *PermissionBuilder {
	if b.actor != nil {
		return b.fail(fmt.Errorf("%w: only one actor can be specified", ErrInvalidState))
	}
	b.actor = &a
	return b
}

func (b *PermissionBuilder) initOperations() {
	if b.operations == nil {
		b.operations = make([]Operation, 0, 4)
	}
}

func (b *PermissionBuilder) fail(err error) *PermissionBuilder {
	b.err = errors.Join(b.err, err)
	return b
}
