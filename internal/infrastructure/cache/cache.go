package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const keyPrefix = "fakenews:v1:"

// Cache is a byte-oriented key/value cache
type Cache interface {
	// Get returns the value and whether it was found
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for ttl; zero ttl uses the cache default
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Namespace derives a short key namespace from a model identity, such as an
// artifact checksum or a remote service URL.
func Namespace(identity string) string {
	hash := sha256.Sum256([]byte(identity))
	return hex.EncodeToString(hash[:8])
}

// Key derives a cache key from the input text within namespace
func Key(namespace, text string) string {
	hash := sha256.Sum256([]byte(text))
	return keyPrefix + namespace + ":" + hex.EncodeToString(hash[:])
}
