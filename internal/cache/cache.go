package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the injected query-result cache interface. The engine works
// correctly with no cache at all; implementations only speed up repeat
// discoveries.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// QueryKey generates a cache key for a provider query
func QueryKey(provider, query string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + query))
	return "vendorscout:v1:" + hex.EncodeToString(hash[:])
}
