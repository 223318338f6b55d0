// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cred-store/internal/config"
	"github.com/MKhiriev/go-cred-store/internal/logger"
	"github.com/MKhiriev/go-cred-store/internal/utils"
	"github.com/MKhiriev/go-cred-store/models"
)

const (
	dataPath        = "/api/v1/data"
	permissionsPath = "/api/v1/permissions"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout, and stores the initial bearer token
// from adapterCfg.AuthToken.
//
// Returns an error if adapterCfg.ServerAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	a := &httpServerAdapter{
		client: client,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}
	a.SetToken(adapterCfg.AuthToken)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests. A token
// that is already expired is stored anyway; the server will reject it, but a
// warning is logged up front.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)

	if h.token != "" && utils.IsTokenExpired(h.token, time.Now()) {
		h.logger.Warn().
			Str("func", "httpServerAdapter.SetToken").
			Msg("bearer token is expired or undecodable")
	}
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Write implements [ServerAdapter]. It PUTs the write request to
// PUT /api/v1/data and decodes the stored credential from the response.
// Returns an error if the request fails or the server returns a non-2xx
// status.
func (h *httpServerAdapter) Write(ctx context.Context, req models.WriteRequest) (models.Credential, error) {
	var cred models.Credential

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&cred).
		Put(dataPath)
	if err != nil {
		return models.Credential{}, fmt.Errorf("write credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return cred, nil
}

// GetByName implements [ServerAdapter]. It GETs
// GET /api/v1/data?name=<name>&current=true and returns the single current
// version from the response envelope. Returns [ErrNotFound] (wrapped) on
// HTTP 404 or when the envelope is empty.
func (h *httpServerAdapter) GetByName(ctx context.Context, name string) (models.Credential, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"name":    name,
			"current": "true",
		}).
		Get(dataPath)
	if err != nil {
		return models.Credential{}, fmt.Errorf("get credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	var envelope models.CredentialData
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Credential{}, fmt.Errorf("decode credential response: %w", err)
	}
	if len(envelope.Data) == 0 {
		return models.Credential{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return envelope.Data[0], nil
}

// GetVersionsByName implements [ServerAdapter]. It GETs
// GET /api/v1/data?name=<name> and returns every stored version, newest
// first, as the server orders them.
func (h *httpServerAdapter) GetVersionsByName(ctx context.Context, name string) ([]models.Credential, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("name", name).
		Get(dataPath)
	if err != nil {
		return nil, fmt.Errorf("get credential versions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.CredentialData
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode credential versions response: %w", err)
	}

	return envelope.Data, nil
}

// GetByID implements [ServerAdapter]. It GETs GET /api/v1/data/<id> and
// decodes the single credential version from the response.
func (h *httpServerAdapter) GetByID(ctx context.Context, id string) (models.Credential, error) {
	var cred models.Credential

	resp, err := h.authedRequest(ctx).
		SetResult(&cred).
		Get(dataPath + "/" + url.PathEscape(id))
	if err != nil {
		return models.Credential{}, fmt.Errorf("get credential by id request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return cred, nil
}

// Delete implements [ServerAdapter]. It sends
// DELETE /api/v1/data?name=<name>. Returns [ErrNotFound] (wrapped) on
// HTTP 404.
func (h *httpServerAdapter) Delete(ctx context.Context, name string) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("name", name).
		Delete(dataPath)
	if err != nil {
		return fmt.Errorf("delete credential request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetPermissions implements [ServerAdapter]. It GETs
// GET /api/v1/permissions?credential_name=<name> and decodes the
// permissions envelope.
func (h *httpServerAdapter) GetPermissions(ctx context.Context, credentialName string) (models.PermissionsResponse, error) {
	var perms models.PermissionsResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("credential_name", credentialName).
		SetResult(&perms).
		Get(permissionsPath)
	if err != nil {
		return models.PermissionsResponse{}, fmt.Errorf("get permissions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PermissionsResponse{}, err
	}

	return perms, nil
}

// AddPermissions implements [ServerAdapter]. It POSTs the permissions
// payload to POST /api/v1/permissions. Returns [ErrNotFound] (wrapped) when
// the target credential does not exist.
func (h *httpServerAdapter) AddPermissions(ctx context.Context, req models.PermissionsRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(permissionsPath)
	if err != nil {
		return fmt.Errorf("add permissions request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", h.uuid.Generate())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
