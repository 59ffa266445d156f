// Package builder declares ArchiMate models in Go code.
//
// A [Builder] is an explicit build context: every element, relationship and
// view is declared through it, and nothing refers to a "current" model. Errors
// do not interrupt the chain of declarations. The first one is kept and
// returned from [Builder.Build], and later declarations become no-ops.
//
//	b := builder.New("Archisurance", builder.WithVersion("3.1.1"))
//	svc := b.Element(model.BusinessService, "take order")
//	role := b.Element(model.BusinessRole, "order taker")
//	b.AssignedTo(role, svc)
//	b.View("Everything", view.Options{})
//	m, err := b.Build(ctx)
//
// Views capture their selection when declared, so a view selecting all
// elements only sees the elements declared before it. Rendering is deferred
// to Build, which lays out all views concurrently and attaches the diagrams
// in declaration order once every view has succeeded.
package builder

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/layout/engine"
	"github.com/matzehuels/archiview/pkg/model"
	"github.com/matzehuels/archiview/pkg/view"
)

// Builder accumulates a model. The zero value is not usable - use New.
type Builder struct {
	m        *model.Model
	renderer *view.Renderer
	parallel int
	views    []pendingView
	viewIDs  map[string]bool
	err      error
	built    bool
}

type pendingView struct {
	opts view.Options
	sel  view.Selection
}

type config struct {
	id, doc, version string
	renderer         *view.Renderer
	parallel         int
}

// Option configures a Builder.
type Option func(*config)

// WithID sets an explicit model id. It must be an XML NCName.
func WithID(id string) Option { return func(c *config) { c.id = id } }

// WithDocumentation sets the model documentation.
func WithDocumentation(doc string) Option { return func(c *config) { c.doc = doc } }

// WithVersion sets the model version.
func WithVersion(v string) Option { return func(c *config) { c.version = v } }

// WithRenderer sets the renderer used by Build. The default renders with
// the in-process Graphviz engine and discards logs.
func WithRenderer(r *view.Renderer) Option { return func(c *config) { c.renderer = r } }

// WithParallelism bounds the number of views rendered at once (default: unbounded).
func WithParallelism(n int) Option { return func(c *config) { c.parallel = n } }

// New starts a model named name.
func New(name string, opts ...Option) *Builder {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Builder{renderer: cfg.renderer, parallel: cfg.parallel, viewIDs: map[string]bool{}}
	if err := errors.ValidateName(name); err != nil {
		b.fail(err)
	}
	if cfg.id != "" {
		if err := errors.ValidateID(cfg.id); err != nil {
			b.fail(err)
			cfg.id = ""
		}
	}
	b.m = model.New(cfg.id, name)
	b.m.Documentation = cfg.doc
	b.m.Version = cfg.version
	return b
}

// Model returns the model under construction.
func (b *Builder) Model() *model.Model {
	if b == nil {
		return nil
	}
	return b.m
}

// Err returns the first error recorded so far.
func (b *Builder) Err() error {
	if err := b.check(); err != nil {
		return err
	}
	return b.err
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// check reports a context error for builders that cannot accept declarations.
func (b *Builder) check() error {
	switch {
	case b == nil:
		return errors.New(errors.ErrCodeContext, "nil builder")
	case b.m == nil:
		return errors.New(errors.ErrCodeContext, "builder has no model (use builder.New)")
	case b.built:
		return errors.New(errors.ErrCodeContext, "model %q already built", b.m.Name)
	}
	return nil
}

// ready reports whether a declaration should proceed, recording any context error.
func (b *Builder) ready() bool {
	if err := b.check(); err != nil {
		if b != nil {
			b.fail(err)
		}
		return false
	}
	return b.err == nil
}

// Properties adds model-level properties. Keys are added in sorted order;
// a key seen before reuses its property definition.
func (b *Builder) Properties(props map[string]string) {
	if !b.ready() {
		return
	}
	for _, k := range slices.Sorted(maps.Keys(props)) {
		b.m.SetProperty(k, props[k])
	}
}

// View declares a diagram. The selection is resolved now; layout happens in Build.
func (b *Builder) View(name string, opts view.Options) {
	if !b.ready() {
		return
	}
	opts.Name = name
	if err := b.checkMembers(opts); err != nil {
		b.fail(err)
		return
	}
	if opts.ID != "" {
		if b.viewIDs[opts.ID] || b.m.InUse(opts.ID) {
			b.fail(errors.New(errors.ErrCodeDuplicateID, "view %q: id %q already in use", name, opts.ID))
			return
		}
		b.viewIDs[opts.ID] = true
	}
	b.views = append(b.views, pendingView{opts: opts, sel: view.Select(b.m, opts)})
}

func (b *Builder) checkMembers(opts view.Options) error {
	sel := view.Select(b.m, opts)
	for _, e := range sel.Elements {
		if !b.m.Contains(e) {
			return errors.New(errors.ErrCodeContext, "view %q: element %q is not part of model %q", opts.Name, elementID(e), b.m.Name)
		}
	}
	for _, r := range sel.Relationships {
		if r == nil {
			return errors.New(errors.ErrCodeContext, "view %q: nil relationship", opts.Name)
		}
		if got, ok := b.m.Relationship(r.ID); !ok || got != r {
			return errors.New(errors.ErrCodeContext, "view %q: relationship %q is not part of model %q", opts.Name, r.ID, b.m.Name)
		}
	}
	return nil
}

func elementID(e *model.Element) string {
	if e == nil {
		return "<nil>"
	}
	return e.ID
}

// Build renders every declared view and returns the finished model.
// The builder cannot be used afterwards. On error no diagram is attached.
func (b *Builder) Build(ctx context.Context) (*model.Model, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	b.built = true
	if b.err != nil {
		return nil, b.err
	}

	r := b.renderer
	if r == nil {
		r = view.NewRenderer(engine.NewGraphviz(), nil)
	}

	diagrams := make([]*model.Diagram, len(b.views))
	g, gctx := errgroup.WithContext(ctx)
	if b.parallel > 0 {
		g.SetLimit(b.parallel)
	}
	for i, pv := range b.views {
		g.Go(func() error {
			res, err := r.RenderSelection(gctx, b.m, pv.opts, pv.sel)
			if err != nil {
				return fmt.Errorf("view %q: %w", pv.opts.Name, err)
			}
			diagrams[i] = res.Diagram
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, pv := range b.views {
		if pv.opts.ID != "" && b.m.InUse(pv.opts.ID) {
			return nil, errors.New(errors.ErrCodeDuplicateID, "view %q: id %q already in use", pv.opts.Name, pv.opts.ID)
		}
	}
	for _, d := range diagrams {
		if d.ID != "" && !b.m.InUse(d.ID) {
			if err := b.m.Reserve(d.ID); err != nil {
				return nil, err
			}
		}
		b.m.AddDiagram(d)
	}
	return b.m, nil
}
