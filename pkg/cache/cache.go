// Package cache provides artifact caching for the generation pipeline.
//
// Rendering the same document twice produces byte-identical output, so
// finished artifacts are cached keyed by a content hash of the document plus
// a fingerprint of the resolved configuration. Three backends implement the
// same interface:
//
//   - FileCache: XDG cache directory, used by the CLI
//   - RedisCache: shared cache for render-service deployments
//   - NullCache: caching disabled (--no-cache, tests)
//
// Keys are produced by a Keyer so that multi-tenant deployments can namespace
// entries (see ScopedKeyer).
package cache

import (
	"context"
	"time"
)

// TTL values for cached data.
const (
	// TTLArtifact is how long rendered artifacts are kept. Artifacts are
	// content-addressed, so the TTL only bounds disk usage, not staleness.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values with expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A non-positive TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
