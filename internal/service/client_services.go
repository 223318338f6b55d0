package service

import (
	"github.com/MKhiriev/go-cred-store/internal/adapter"
	"github.com/MKhiriev/go-cred-store/internal/config"
	"github.com/MKhiriev/go-cred-store/internal/crypto"
	"github.com/MKhiriev/go-cred-store/internal/store"
)

type ClientServices struct {
	CacheService      ClientCacheService
	CredentialService ClientCredentialService
	RefreshJob        ClientRefreshJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, appCfg config.ClientApp) *ClientServices {
	keychain := crypto.NewKeyChainService()
	cacheSvc := NewClientCacheService(storages.CredentialCache, keychain, appCfg.CachePassphrase)
	credentialSvc := NewClientCredentialService(storages.CredentialCache, serverAdapter, cacheSvc)

	return &ClientServices{
		CacheService:      cacheSvc,
		CredentialService: credentialSvc,
		RefreshJob:        NewClientRefreshJob(credentialSvc),
	}
}
