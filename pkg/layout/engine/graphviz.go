package engine

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// FormatPlain is the Graphviz output format carrying node and edge coordinates.
const FormatPlain = "plain"

// Graphviz lays out graphs with the in-process Graphviz library.
type Graphviz struct{}

// NewGraphviz returns the in-process Graphviz engine.
func NewGraphviz() *Graphviz { return &Graphviz{} }

// Name returns "graphviz".
func (*Graphviz) Name() string { return "graphviz" }

// Layout renders dot in plain format.
func (g *Graphviz) Layout(ctx context.Context, dot []byte) ([]byte, error) {
	return g.render(ctx, dot, graphviz.Format(FormatPlain))
}

// SVG renders dot as an SVG document using Graphviz's own drawing.
func (g *Graphviz) SVG(ctx context.Context, dot []byte) ([]byte, error) {
	return g.render(ctx, dot, graphviz.SVG)
}

// render runs Graphviz on its own goroutine so a context deadline can abandon
// a long layout. The abandoned goroutine finishes in the background.
func (g *Graphviz) render(ctx context.Context, dot []byte, format graphviz.Format) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	type result struct {
		out []byte
		err error
	}
	done := make(chan result, 1)

	go func() {
		out, err := renderGraphviz(ctx, dot, format)
		done <- result{out, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.out, r.err
	}
}

func renderGraphviz(ctx context.Context, dot []byte, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
