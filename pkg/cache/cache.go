// Package cache provides content-addressed caching for layout artifacts.
//
// Layout computation is deterministic, so a project hash plus the layout
// options fully identify a result. The cache stores computed plans and
// rendered artifacts (SVG/PNG/PDF bytes) under such derived keys.
//
// Backends:
//   - [FileCache]: directory-backed, for CLI usage
//   - [RedisCache]: shared cache for the preview server
//   - [NullCache]: disabled caching
package cache

import (
	"context"
	"time"
)

// Default TTLs per stored kind. Layout plans are cheap to recompute, so
// they expire first; rendered artifacts keep longer because PNG and PDF
// conversion shells out.
const (
	TTLProject  = 24 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
