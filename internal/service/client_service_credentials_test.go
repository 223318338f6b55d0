// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cred-store/internal/adapter"
	"github.com/MKhiriev/go-cred-store/internal/mock"
	"github.com/MKhiriev/go-cred-store/internal/store"
	"github.com/MKhiriev/go-cred-store/models"
)

func newTestCredentialSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	ClientCredentialService,
	*mock.MockCredentialCacheRepository,
	*mock.MockServerAdapter,
	*mock.MockClientCacheService,
) {
	t.Helper()
	mockRepo := mock.NewMockCredentialCacheRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockClientCacheService(ctrl)

	svc := NewClientCredentialService(mockRepo, mockAdapter, mockCache)
	return svc, mockRepo, mockAdapter, mockCache
}

// ── SetPassword / SetJSON ────────────────────────────────────────────────────

func TestClientCredentialService_SetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockCache := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()
	name := models.NewCredentialName("prod", "db", "password")

	written := models.Credential{ID: "id-1", Name: "/prod/db/password", Type: "password", Value: "s3cr3t"}
	sealed := models.CachedCredential{Name: "/prod/db/password", EncryptedValue: "blob"}

	mockAdapter.EXPECT().
		Write(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.WriteRequest) (models.Credential, error) {
			assert.Equal(t, "/prod/db/password", req.Name())
			assert.Equal(t, "password", req.Type())
			assert.Equal(t, "s3cr3t", req.Value())
			assert.True(t, req.IsOverwrite())
			return written, nil
		})
	mockCache.EXPECT().SealCredential(ctx, written).Return(sealed, nil)
	mockRepo.EXPECT().SaveCredential(ctx, sealed).Return(nil)

	got, err := svc.SetPassword(ctx, name, "s3cr3t", true, nil)
	require.NoError(t, err)
	assert.Equal(t, written, got)
}

func TestClientCredentialService_SetPassword_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestCredentialSvc(t, ctrl)

	_, err := svc.SetPassword(context.Background(), models.NewCredentialName("n"), "", true, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestClientCredentialService_SetPassword_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Write(ctx, gomock.Any()).Return(models.Credential{}, adapter.ErrForbidden)

	_, err := svc.SetPassword(ctx, models.NewCredentialName("n"), "pw", true, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Contains(t, err.Error(), "write credential to server")
}

func TestClientCredentialService_SetPassword_CacheSaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockCache := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()
	written := models.Credential{ID: "id-1", Name: "/n", Type: "password"}

	mockAdapter.EXPECT().Write(ctx, gomock.Any()).Return(written, nil)
	mockCache.EXPECT().SealCredential(ctx, written).Return(models.CachedCredential{}, nil)
	mockRepo.EXPECT().SaveCredential(ctx, gomock.Any()).Return(errors.New("db error"))

	_, err := svc.SetPassword(ctx, models.NewCredentialName("n"), "pw", true, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save credential to local cache")
}

func TestClientCredentialService_SetJSON_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockCache := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()
	value := map[string]any{"user": "admin", "pass": "s3cr3t"}
	written := models.Credential{ID: "id-2", Name: "/n", Type: "json", Value: value}

	mockAdapter.EXPECT().
		Write(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.WriteRequest) (models.Credential, error) {
			assert.Equal(t, "json", req.Type())
			assert.Equal(t, value, req.Value())
			assert.False(t, req.IsOverwrite())
			return written, nil
		})
	mockCache.EXPECT().SealCredential(ctx, written).Return(models.CachedCredential{}, nil)
	mockRepo.EXPECT().SaveCredential(ctx, gomock.Any()).Return(nil)

	got, err := svc.SetJSON(ctx, models.NewCredentialName("n"), value, false, nil)
	require.NoError(t, err)
	assert.Equal(t, written, got)
}

func TestClientCredentialService_SetJSON_NilValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestCredentialSvc(t, ctrl)

	_, err := svc.SetJSON(context.Background(), models.NewCredentialName("n"), nil, true, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestClientCredentialService_Get_ServerFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockCache := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()
	cred := models.Credential{ID: "id-1", Name: "/n", Type: "password", Value: "s3cr3t"}

	mockAdapter.EXPECT().GetByName(ctx, "/n").Return(cred, nil)
	mockCache.EXPECT().SealCredential(ctx, cred).Return(models.CachedCredential{}, nil)
	mockRepo.EXPECT().SaveCredential(ctx, gomock.Any()).Return(nil)

	got, err := svc.Get(ctx, "/n")
	require.NoError(t, err)
	assert.Equal(t, cred, got)
}

func TestClientCredentialService_Get_RefreshFailureDoesNotBreakRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, mockCache := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()
	cred := models.Credential{ID: "id-1", Name: "/n"}

	mockAdapter.EXPECT().GetByName(ctx, "/n").Return(cred, nil)
	mockCache.EXPECT().SealCredential(ctx, cred).Return(models.CachedCredential{}, ErrCacheKeyNotInitialised)

	got, err := svc.Get(ctx, "/n")
	require.NoError(t, err)
	assert.Equal(t, cred, got)
}

func TestClientCredentialService_Get_FallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockCache := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()
	entry := models.CachedCredential{Name: "/n", EncryptedValue: "blob"}
	cred := models.Credential{ID: "id-1", Name: "/n", Value: "s3cr3t"}

	mockAdapter.EXPECT().GetByName(ctx, "/n").Return(models.Credential{}, errors.New("get credential request: connection refused"))
	mockRepo.EXPECT().GetCredential(ctx, "/n").Return(entry, nil)
	mockCache.EXPECT().OpenCredential(ctx, entry).Return(cred, nil)

	got, err := svc.Get(ctx, "/n")
	require.NoError(t, err)
	assert.Equal(t, cred, got)
}

func TestClientCredentialService_Get_UnreachableAndNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetByName(ctx, "/n").Return(models.Credential{}, adapter.ErrBadGateway)
	mockRepo.EXPECT().GetCredential(ctx, "/n").Return(models.CachedCredential{}, store.ErrCredentialNotFound)

	_, err := svc.Get(ctx, "/n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotCached)
	assert.ErrorIs(t, err, adapter.ErrBadGateway)
}

func TestClientCredentialService_Get_NotFoundIsNotMaskedByCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	// a definite 404 from the server must not trigger the cache fallback
	mockAdapter.EXPECT().GetByName(ctx, "/n").Return(models.Credential{}, adapter.ErrNotFound)

	_, err := svc.Get(ctx, "/n")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

// ── GetVersions ──────────────────────────────────────────────────────────────

func TestClientCredentialService_GetVersions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()
	versions := []models.Credential{{ID: "v2"}, {ID: "v1"}}

	mockAdapter.EXPECT().GetVersionsByName(ctx, "/n").Return(versions, nil)

	got, err := svc.GetVersions(ctx, "/n")
	require.NoError(t, err)
	assert.Equal(t, versions, got)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestClientCredentialService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Delete(ctx, "/n").Return(nil)
	mockRepo.EXPECT().DeleteCredential(ctx, "/n").Return(nil)

	require.NoError(t, svc.Delete(ctx, "/n"))
}

func TestClientCredentialService_Delete_ServerNotFoundStillClearsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Delete(ctx, "/n").Return(adapter.ErrNotFound)
	mockRepo.EXPECT().DeleteCredential(ctx, "/n").Return(store.ErrCredentialNotFound)

	err := svc.Delete(ctx, "/n")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestClientCredentialService_Delete_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Delete(ctx, "/n").Return(adapter.ErrForbidden)

	err := svc.Delete(ctx, "/n")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

// ── ListCached ───────────────────────────────────────────────────────────────

func TestClientCredentialService_ListCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.CachedCredential{
		{Name: "/a", EncryptedValue: "blob-a"},
		{Name: "/b", EncryptedValue: "blob-b"},
	}
	mockRepo.EXPECT().GetAllCredentials(ctx).Return(entries, nil)
	mockCache.EXPECT().OpenCredential(ctx, entries[0]).Return(models.Credential{Name: "/a"}, nil)
	mockCache.EXPECT().OpenCredential(ctx, entries[1]).Return(models.Credential{Name: "/b"}, nil)

	creds, err := svc.ListCached(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 2)
	assert.Equal(t, "/a", creds[0].Name)
}

func TestClientCredentialService_ListCached_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetAllCredentials(ctx).Return(nil, nil)

	creds, err := svc.ListCached(ctx)
	require.NoError(t, err)
	assert.Empty(t, creds)
}

// ── Permissions ──────────────────────────────────────────────────────────────

func TestClientCredentialService_Permissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()
	resp := models.PermissionsResponse{CredentialName: "/n"}

	mockAdapter.EXPECT().GetPermissions(ctx, "/n").Return(resp, nil)

	got, err := svc.Permissions(ctx, "/n")
	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestClientCredentialService_AddPermissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	perm, err := models.NewPermissionBuilder().
		WithApp("app-id").
		WithOperation(models.OperationRead).
		Build()
	require.NoError(t, err)

	mockAdapter.EXPECT().
		AddPermissions(ctx, models.PermissionsRequest{
			CredentialName: "/n",
			Permissions:    []models.Permission{perm},
		}).
		Return(nil)

	require.NoError(t, svc.AddPermissions(ctx, "/n", []models.Permission{perm}))
}
