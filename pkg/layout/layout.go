package layout

import (
	"bytes"
	"context"

	"github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/layout/plain"
)

// Engine lays out a DOT graph and returns Graphviz plain output.
type Engine interface {
	Name() string
	Layout(ctx context.Context, dot []byte) ([]byte, error)
}

// Run submits g to eng and resolves the output into diagram geometry.
// An empty graph is never submitted.
func Run(ctx context.Context, eng Engine, g *Graph, style Style) (*Result, error) {
	style = style.WithDefaults()
	if err := style.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "layout style")
	}
	if g.Empty() {
		return &Result{}, nil
	}
	if eng == nil {
		return nil, errors.New(errors.ErrCodeEngine, "no layout engine configured")
	}

	out, err := eng.Layout(ctx, ToDOT(g, style))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.FromContext(ctxErr, "%s layout", eng.Name())
		}
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeEngine, err, "%s layout", eng.Name())
	}

	parsed, err := plain.Parse(bytes.NewReader(out))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEngine, err, "read %s output", eng.Name())
	}
	return Resolve(parsed, g, style.DPI)
}
