// Package cache provides the key-value layer that memoizes extraction
// results, plus the backends that implement it.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Namespace prefixes every key this module writes, so that bulk invalidation
// can target our entries without touching unrelated data in a shared store.
const Namespace = "hitcount:v1:"

// Store is the minimal contract extraction needs from a key-value backend.
// Implementations report failures as errors; callers on the extraction path
// treat any error as a cache miss and carry on.
type Store interface {
	// Get returns the payload for key, or ok=false when absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key with an expiry ttl from now, overwriting any
	// existing entry. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes a single entry. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every entry whose key starts with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// KeyFor derives the cache key for a fragment: the namespace prefix plus a
// sha256 digest of the content, so distinct rendered blocks on the same page
// cache independently.
func KeyFor(fragment string) string {
	h := sha256.Sum256([]byte(fragment))
	return Namespace + hex.EncodeToString(h[:])
}

// ClearAll removes every entry under the module namespace. Wired to the
// settings-change / uninstall invalidation trigger.
func ClearAll(ctx context.Context, s Store) error {
	return s.DeletePrefix(ctx, Namespace)
}

// Clear removes a single entry by exact key. Kept for callers that tracked
// one key at a time before content-hash keying existed.
func Clear(ctx context.Context, s Store, key string) error {
	return s.Delete(ctx, key)
}
