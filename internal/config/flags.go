package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s server base address of the credential service
//	-d local cache database DSN
//	-c/-config json file path with configs
//	-token OAuth2 bearer token
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cache-passphrase passphrase for the local cache encryption key
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var cacheDSN string
	var jsonConfigPath string
	var authToken string
	var requestTimeout time.Duration
	var cachePassphrase string

	flag.StringVar(&serverAddress, "s", "", "Credential service base address")
	flag.StringVar(&cacheDSN, "d", "", "Local cache database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&authToken, "token", "", "OAuth2 bearer token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&cachePassphrase, "cache-passphrase", "", "Local cache encryption passphrase")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			CachePassphrase: cachePassphrase,
		},
		Adapter: Adapter{
			ServerAddress:  serverAddress,
			AuthToken:      authToken,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: cacheDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
