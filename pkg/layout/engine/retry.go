package engine

import (
	"context"

	"github.com/matzehuels/archiview/pkg/cache"
	"github.com/matzehuels/archiview/pkg/layout"
)

// Retrying retries layouts that fail with a cache.Retryable error.
type Retrying struct {
	inner   layout.Engine
	backoff cache.Backoff
}

// NewRetrying wraps inner with the given schedule.
func NewRetrying(inner layout.Engine, b cache.Backoff) *Retrying {
	return &Retrying{inner: inner, backoff: b}
}

// Name returns the wrapped engine's name.
func (r *Retrying) Name() string { return r.inner.Name() }

// Layout calls the wrapped engine until it succeeds or the schedule runs out.
func (r *Retrying) Layout(ctx context.Context, dot []byte) ([]byte, error) {
	var out []byte
	err := r.backoff.Retry(ctx, func() error {
		var err error
		out, err = r.inner.Layout(ctx, dot)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
