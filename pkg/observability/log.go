package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes render, cache and HTTP events to a logger at debug level.
// Failures are logged at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks logging to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger.WithPrefix("hooks")}
}

func (h *LogHooks) OnLayoutStart(_ context.Context, view, engine string, nodes, edges int) {
	h.logger.Debug("layout start", "view", view, "engine", engine, "nodes", nodes, "edges", edges)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, view, engine string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("layout failed", "view", view, "engine", engine, "error", err)
		return
	}
	h.logger.Debug("layout done", "view", view, "engine", engine, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, view, viewpoint string) {
	h.logger.Debug("render start", "view", view, "viewpoint", viewpoint)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, view, viewpoint string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "view", view, "viewpoint", viewpoint, "error", err)
		return
	}
	h.logger.Debug("render done", "view", view, "viewpoint", viewpoint, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "path", path, "status", status, "duration", d)
}

var (
	_ RenderHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ HTTPHooks   = (*LogHooks)(nil)
)
