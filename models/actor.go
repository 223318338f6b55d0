// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ActorType classifies the kind of identity a permission names as its
// principal. The values match the auth-type prefixes the credential service
// uses in its wire representation of an actor.
type ActorType string

const (
	// ActorTypeApp identifies an application, typically by its platform GUID.
	ActorTypeApp ActorType = "mtls-app"

	// ActorTypeUser identifies a user account, typically by the GUID
	// generated by the identity provider when the account is created.
	ActorTypeUser ActorType = "uaa-user"

	// ActorTypeOAuthClient identifies an OAuth2 client by its client ID.
	ActorTypeOAuthClient ActorType = "uaa-client"
)

// Actor is an immutable identity descriptor used as the principal of a
// [Permission]. It is constructed via the factories below and serializes to
// a single identity token of the form "auth-type:identifier" or
// "auth-type:zone/identifier" when zone-scoped.
type Actor struct {
	authType  ActorType
	zoneID    string
	primaryID string
}

// AppActor returns an [Actor] describing an application.
func AppActor(appID string) Actor {
	return Actor{authType: ActorTypeApp, primaryID: appID}
}

// UserActor returns an [Actor] describing a user account.
func UserActor(userID string) Actor {
	return Actor{authType: ActorTypeUser, primaryID: userID}
}

// ZonedUserActor returns an [Actor] describing a user account scoped to an
// identity zone.
func ZonedUserActor(zoneID, userID string) Actor {
	return Actor{authType: ActorTypeUser, zoneID: zoneID, primaryID: userID}
}

// ClientActor returns an [Actor] describing an OAuth2 client.
func ClientActor(clientID string) Actor {
	return Actor{authType: ActorTypeOAuthClient, primaryID: clientID}
}

// ZonedClientActor returns an [Actor] describing an OAuth2 client scoped to
// an identity zone.
func ZonedClientActor(zoneID, clientID string) Actor {
	return Actor{authType: ActorTypeOAuthClient, zoneID: zoneID, primaryID: clientID}
}

// ParseActorIdentity parses an identity token produced by [Actor.Identity]
// back into an [Actor]. It is used when decoding permission entries returned
// by the server.
func ParseActorIdentity(identity string) (Actor, error) {
	authType, rest, ok := strings.Cut(identity, ":")
	if !ok || authType == "" || rest == "" {
		return Actor{}, fmt.Errorf("malformed actor identity %q", identity)
	}

	switch ActorType(authType) {
	case ActorTypeApp, ActorTypeUser, ActorTypeOAuthClient:
	default:
		return Actor{}, fmt.Errorf("unknown actor auth type %q", authType)
	}

	a := Actor{authType: ActorType(authType)}
	if zone, id, zoned := strings.Cut(rest, "/"); zoned {
		a.zoneID = zone
		a.primaryID = id
	} else {
		a.primaryID = rest
	}

	if a.primaryID == "" {
		return Actor{}, fmt.Errorf("malformed actor identity %q", identity)
	}
	return a, nil
}

// AuthType returns the actor kind.
func (a Actor) AuthType() ActorType {
	return a.authType
}

// ZoneID returns the identity zone the actor is scoped to, or an empty
// string for unzoned actors.
func (a Actor) ZoneID() string {
	return a.zoneID
}

// PrimaryIdentifier returns the actor's primary identifier (application
// GUID, user GUID, or OAuth2 client ID).
func (a Actor) PrimaryIdentifier() string {
	return a.primaryID
}

// Identity returns the wire token of the actor:
// "auth-type:identifier", or "auth-type:zone/identifier" when zone-scoped.
func (a Actor) Identity() string {
	if a.zoneID != "" {
		return string(a.authType) + ":" + a.zoneID + "/" + a.primaryID
	}
	return string(a.authType) + ":" + a.primaryID
}

// IsZero reports whether the actor carries no identity.
func (a Actor) IsZero() bool {
	return a == Actor{}
}

// Equal reports structural equality with other.
func (a Actor) Equal(other Actor) bool {
	return a == other
}

// MarshalJSON encodes the actor as its identity token.
func (a Actor) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Identity())
}

// UnmarshalJSON decodes an identity token into the actor.
func (a *Actor) UnmarshalJSON(data []byte) error {
	var identity string
	if err := json.Unmarshal(data, &identity); err != nil {
		return err
	}

	parsed, err := ParseActorIdentity(identity)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Actor) String() string {
	return a.Identity()
}
