package service

import "errors"

var (
	// ErrCacheKeyNotInitialised is returned when a seal or open operation
	// runs before the cache key has been derived via Init.
	ErrCacheKeyNotInitialised = errors.New("cache key is not initialised")

	// ErrNotCached is returned when the server is unreachable and the named
	// credential has no sealed local copy to fall back to.
	ErrNotCached = errors.New("credential is not present in local cache")
)
