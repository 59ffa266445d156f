// Package cache stores layout engine output keyed by content hash.
//
// Layout is the only expensive step of rendering a view, and its input (the
// DOT serialization of a layout graph) fully determines its output. Caching
// engine output by a hash of that input lets repeated renders of an unchanged
// model skip the engine. Diagrams themselves are never cached: every render
// still mints fresh ids and assembles a new Diagram from the cached geometry.
//
// # Backends
//
//   - [FileCache]: one file per entry under a directory, for the CLI
//   - [RedisCache]: shared cache for the HTTP service
//   - [MemoryCache]: process-local map, for tests and short-lived servers
//   - [NullCache]: caching disabled
//
// # Keys
//
// Keys are built by a [Keyer]. [DefaultKeyer] hashes the DOT input together
// with the engine name and output format; [ScopedKeyer] adds a namespace
// prefix so several services can share one Redis instance.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiration.
// A miss is reported as (nil, false, nil); errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}
