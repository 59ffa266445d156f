package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/matzehuels/archiview/pkg/cache"
	"github.com/matzehuels/archiview/pkg/layout"
	"github.com/matzehuels/archiview/pkg/model"
	"github.com/matzehuels/archiview/pkg/observability"
)

// SVGRenderer draws DOT as SVG. engine.Graphviz implements it.
type SVGRenderer interface {
	SVG(ctx context.Context, dot []byte) ([]byte, error)
}

// DOT rebuilds the layout graph of a rendered diagram. Every node of the
// diagram is kept, including ones without connections.
func DOT(d *model.Diagram, style layout.Style) []byte {
	elements := make([]*model.Element, len(d.Nodes))
	for i, n := range d.Nodes {
		elements[i] = n.Element
	}
	rels := make([]*model.Relationship, len(d.Connections))
	for i, c := range d.Connections {
		rels[i] = c.Relationship
	}
	return layout.ToDOT(layout.Build(elements, rels, layout.IsolatedInclude), style)
}

// SVG renders one diagram.
func SVG(ctx context.Context, r SVGRenderer, d *model.Diagram, style layout.Style) ([]byte, error) {
	out, err := r.SVG(ctx, DOT(d, style))
	if err != nil {
		return nil, fmt.Errorf("svg %q: %w", d.Name, err)
	}
	return out, nil
}

// CachedSVG stores rendered SVG keyed by a hash of the DOT input.
// Cache failures fall through to the wrapped renderer.
type CachedSVG struct {
	inner SVGRenderer
	cache cache.Cache
	keyer cache.Keyer
}

// NewCachedSVG wraps inner with c. A nil keyer uses cache.DefaultKeyer.
func NewCachedSVG(inner SVGRenderer, c cache.Cache, keyer cache.Keyer) *CachedSVG {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	return &CachedSVG{inner: inner, cache: c, keyer: keyer}
}

// SVG returns cached output when present and otherwise renders dot.
func (c *CachedSVG) SVG(ctx context.Context, dot []byte) ([]byte, error) {
	key := c.keyer.ArtifactKey(cache.Hash(dot), cache.ArtifactKeyOpts{Format: "svg"})
	hooks := observability.Cache()

	if data, hit, err := c.cache.Get(ctx, key); err == nil && hit {
		hooks.OnCacheHit(ctx, "artifact")
		return data, nil
	}
	hooks.OnCacheMiss(ctx, "artifact")

	out, err := c.inner.SVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, out, cache.TTLArtifact); err == nil {
		hooks.OnCacheSet(ctx, "artifact", len(out))
	}
	return out, nil
}

// WriteSVGs writes one SVG per diagram into dir and returns the paths written.
// styleFor picks the style of each diagram by name; nil uses the default style.
func WriteSVGs(ctx context.Context, r SVGRenderer, m *model.Model, dir string, styleFor func(name string) layout.Style) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	used := map[string]int{}
	var paths []string
	for _, d := range m.Diagrams {
		style := layout.DefaultStyle()
		if styleFor != nil {
			style = styleFor(d.Name)
		}
		svg, err := SVG(ctx, r, d, style)
		if err != nil {
			return paths, err
		}
		name := FileName(d.Name)
		if n := used[name]; n > 0 {
			name = fmt.Sprintf("%s-%d", name, n+1)
		}
		used[FileName(d.Name)]++
		path := filepath.Join(dir, name+".svg")
		if err := os.WriteFile(path, svg, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// FileName turns a diagram name into a lowercase file name stem.
func FileName(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "diagram"
	}
	return s
}
