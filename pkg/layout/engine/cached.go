package engine

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archiview/pkg/cache"
	"github.com/matzehuels/archiview/pkg/layout"
	"github.com/matzehuels/archiview/pkg/observability"
)

// Cached stores engine output keyed by a hash of the DOT input.
// Cache failures are logged and never fail a layout.
type Cached struct {
	inner  layout.Engine
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
}

// NewCached wraps inner with c. A nil keyer uses cache.DefaultKeyer.
func NewCached(inner layout.Engine, c cache.Cache, keyer cache.Keyer) *Cached {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	return &Cached{inner: inner, cache: c, keyer: keyer, logger: log.New(io.Discard)}
}

// WithLogger sets the logger used for cache failures.
func (c *Cached) WithLogger(logger *log.Logger) *Cached {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Name returns the wrapped engine's name.
func (c *Cached) Name() string { return c.inner.Name() }

// Key returns the cache key used for dot.
func (c *Cached) Key(dot []byte) string {
	return c.keyer.LayoutKey(cache.Hash(dot), cache.LayoutKeyOpts{Engine: c.inner.Name(), Format: FormatPlain})
}

// Layout returns cached output when present and otherwise runs the wrapped engine.
func (c *Cached) Layout(ctx context.Context, dot []byte) ([]byte, error) {
	key := c.Key(dot)
	hooks := observability.Cache()

	data, hit, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("layout cache read failed", "error", err)
	} else if hit {
		hooks.OnCacheHit(ctx, "layout")
		return data, nil
	}
	hooks.OnCacheMiss(ctx, "layout")

	out, err := c.inner.Layout(ctx, dot)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, out, cache.TTLLayout); err != nil {
		c.logger.Warn("layout cache write failed", "error", err)
	} else {
		hooks.OnCacheSet(ctx, "layout", len(out))
	}
	return out, nil
}
