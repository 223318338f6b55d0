package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-cred-store/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// respondWith returns a resty response carrying the given status and body.
func respondWith(t *testing.T, status int, body string) error {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	resp, err := utils.NewHTTPClient(srv.URL, time.Second).R().Get("/")
	require.NoError(t, err)

	return mapHTTPError(resp)
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, respondWith(t, http.StatusOK, `{"data":[]}`))
	assert.NoError(t, respondWith(t, http.StatusNoContent, ""))
}

func TestMapHTTPError_SentinelPerStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		err := respondWith(t, tt.status, `{"error":"boom"}`)
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
	}
}

func TestMapHTTPError_ExtractsEnvelopeMessage(t *testing.T) {
	err := respondWith(t, http.StatusNotFound, `{"error":"credential does not exist"}`)
	require.Error(t, err)
	assert.ErrorContains(t, err, "credential does not exist")
}

func TestMapHTTPError_FallsBackToRawBody(t *testing.T) {
	err := respondWith(t, http.StatusBadRequest, "not json at all")
	require.Error(t, err)
	assert.ErrorContains(t, err, "not json at all")
}

func TestMapHTTPError_EmptyBodyUsesStatusText(t *testing.T) {
	err := respondWith(t, http.StatusServiceUnavailable, "")
	require.Error(t, err)
	assert.ErrorContains(t, err, http.StatusText(http.StatusServiceUnavailable))
}
