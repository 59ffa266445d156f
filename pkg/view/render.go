package view

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/layout"
	"github.com/matzehuels/archiview/pkg/model"
	"github.com/matzehuels/archiview/pkg/observability"
)

// DefaultTimeout bounds a single layout engine call.
const DefaultTimeout = 30 * time.Second

// Renderer turns views into diagrams with a layout engine.
type Renderer struct {
	Engine  layout.Engine
	Logger  *log.Logger
	Timeout time.Duration // per view; zero means DefaultTimeout, negative disables
}

// NewRenderer creates a renderer. A nil logger discards output.
func NewRenderer(eng layout.Engine, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Renderer{Engine: eng, Logger: logger}
}

// Stats summarizes one render.
type Stats struct {
	Selected      int // elements after selection
	Filtered      int // elements after viewpoint filtering
	Relationships int // relationships after viewpoint filtering
	Nodes         int
	Connections   int
	LayoutTime    time.Duration
}

// Result is a rendered diagram with its statistics.
type Result struct {
	Diagram *model.Diagram
	Stats   Stats
}

// Render resolves the selectors of opts against m and renders the view.
// The returned diagram is not added to m.
func (r *Renderer) Render(ctx context.Context, m *model.Model, opts Options) (*model.Diagram, error) {
	if m == nil {
		return nil, errors.New(errors.ErrCodeContext, "render %q: no model", opts.Name)
	}
	res, err := r.RenderSelection(ctx, m, opts, Select(m, opts))
	if err != nil {
		return nil, err
	}
	return res.Diagram, nil
}

// RenderSelection renders an already resolved selection. This lets callers
// capture a selection at one point in time and render it later.
func (r *Renderer) RenderSelection(ctx context.Context, m *model.Model, opts Options, sel Selection) (res *Result, err error) {
	if m == nil {
		return nil, errors.New(errors.ErrCodeContext, "render %q: no model", opts.Name)
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.ID != "" && m.InUse(opts.ID) {
		return nil, errors.New(errors.ErrCodeDuplicateID, "diagram id %q already in use", opts.ID)
	}

	logger := r.logger().With("view", opts.Name)
	hooks := observability.Render()
	vpName := opts.Viewpoint.Name()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Name, vpName)
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Name, vpName, time.Since(start), err)
	}()

	elems, rels := opts.Viewpoint.Filter(sel.Elements, sel.Relationships)
	g := layout.Build(elems, rels, opts.Isolated)
	stats := Stats{
		Selected:      len(sel.Elements),
		Filtered:      len(elems),
		Relationships: len(rels),
	}
	logger.Debug("built layout graph", "viewpoint", vpName, "nodes", len(g.Nodes), "edges", len(g.Edges))

	layoutStart := time.Now()
	geom, err := r.layout(ctx, opts, g)
	if err != nil {
		return nil, err
	}
	stats.LayoutTime = time.Since(layoutStart)

	d, err := Assemble(m, opts, geom)
	if err != nil {
		return nil, err
	}
	stats.Nodes = len(d.Nodes)
	stats.Connections = len(d.Connections)

	logger.Info("rendered view",
		"nodes", stats.Nodes,
		"connections", stats.Connections,
		"duration", time.Since(start))
	return &Result{Diagram: d, Stats: stats}, nil
}

func (r *Renderer) layout(ctx context.Context, opts Options, g *layout.Graph) (*layout.Result, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	engName := "none"
	if r.Engine != nil {
		engName = r.Engine.Name()
	}
	hooks := observability.Render()
	hooks.OnLayoutStart(ctx, opts.Name, engName, len(g.Nodes), len(g.Edges))
	start := time.Now()
	geom, err := layout.Run(ctx, r.Engine, g, opts.Style)
	hooks.OnLayoutComplete(ctx, opts.Name, engName, time.Since(start), err)
	if err != nil {
		if code := errors.GetCode(err); code != "" {
			return nil, errors.Wrap(code, err, "layout view %q", opts.Name)
		}
		return nil, err
	}
	return geom, nil
}

func (r *Renderer) logger() *log.Logger {
	if r.Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return r.Logger
}
