package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── factories ─────────────────────────────────────────────────────────────────

// TestActorFactories verifies that each factory produces the expected
// auth type, zone, and identity token.
func TestActorFactories(t *testing.T) {
	tests := []struct {
		name         string
		actor        Actor
		wantType     ActorType
		wantZone     string
		wantIdentity string
	}{
		{"app", AppActor("app-123"), ActorTypeApp, "", "mtls-app:app-123"},
		{"user", UserActor("user-456"), ActorTypeUser, "", "uaa-user:user-456"},
		{"zoned user", ZonedUserActor("zone-1", "user-456"), ActorTypeUser, "zone-1", "uaa-user:zone-1/user-456"},
		{"client", ClientActor("client-789"), ActorTypeOAuthClient, "", "uaa-client:client-789"},
		{"zoned client", ZonedClientActor("zone-1", "client-789"), ActorTypeOAuthClient, "zone-1", "uaa-client:zone-1/client-789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.actor.AuthType())
			assert.Equal(t, tt.wantZone, tt.actor.ZoneID())
			assert.Equal(t, tt.wantIdentity, tt.actor.Identity())
			assert.Equal(t, tt.wantIdentity, tt.actor.String())
		})
	}
}

// ── ParseActorIdentity ────────────────────────────────────────────────────────

// TestParseActorIdentity_RoundTrip verifies that every factory-produced
// identity token parses back to an equal actor.
func TestParseActorIdentity_RoundTrip(t *testing.T) {
	actors := []Actor{
		AppActor("app-123"),
		UserActor("user-456"),
		ZonedUserActor("zone-1", "user-456"),
		ClientActor("client-789"),
		ZonedClientActor("zone-1", "client-789"),
	}

	for _, want := range actors {
		got, err := ParseActorIdentity(want.Identity())
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	}
}

// TestParseActorIdentity_Malformed verifies that tokens without a known
// auth-type prefix or identifier are rejected.
func TestParseActorIdentity_Malformed(t *testing.T) {
	for _, identity := range []string{"", "app-123", "mtls-app:", ":app-123", "bogus:app-123", "uaa-user:zone/"} {
		_, err := ParseActorIdentity(identity)
		assert.Error(t, err, "identity %q", identity)
	}
}

// ── JSON ──────────────────────────────────────────────────────────────────────

// TestActor_JSONRoundTrip verifies that actors marshal to their identity
// token and unmarshal back to an equal value.
func TestActor_JSONRoundTrip(t *testing.T) {
	want := ZonedUserActor("zone-1", "user-456")

	data, err := json.Marshal(want)
	require.NoError(t, err)
	assert.JSONEq(t, `"uaa-user:zone-1/user-456"`, string(data))

	var got Actor
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.Equal(want))
}
