package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseJSON_AllFields verifies that a full JSON document maps onto the
// structured config.
func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"cache_passphrase": "cache_secret",
			"version":          "1.2.3",
		},
		"adapter": map[string]any{
			"server_address":  "localhost:8844",
			"auth_token":      "bearer-token",
			"request_timeout": "45s",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "/tmp/cache.db"},
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "cache_secret", cfg.App.CachePassphrase)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "localhost:8844", cfg.Adapter.ServerAddress)
	assert.Equal(t, "bearer-token", cfg.Adapter.AuthToken)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/cache.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath, "loaded config must not point at another JSON file")
}

// TestParseJSON_MissingFile verifies the error path for an absent file.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

// TestParseJSON_MalformedDocument verifies the error path for invalid JSON.
func TestParseJSON_MalformedDocument(t *testing.T) {
	path := writeTempJSONConfig(t, "not an object")

	_, err := parseJSON(path)
	require.Error(t, err)
}

// ── Duration ──────────────────────────────────────────────────────────────────

// TestDuration_UnmarshalJSON verifies string, numeric, and invalid inputs.
func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1h30m"`)))
	assert.Equal(t, Duration(90*time.Minute), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)

	assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
}

// TestDuration_MarshalJSON verifies the string rendering.
func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(90 * time.Minute).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(data))
}
