package layout

import (
	"github.com/matzehuels/archiview/pkg/errors"
	"github.com/matzehuels/archiview/pkg/layout/plain"
	"github.com/matzehuels/archiview/pkg/model"
)

// PositionedNode is an element with its diagram bounds.
type PositionedNode struct {
	Element *model.Element
	Bounds  model.Bounds
}

// RoutedEdge is a relationship with its pruned bend points.
type RoutedEdge struct {
	Relationship *model.Relationship
	Source       *model.Element
	Target       *model.Element
	Bendpoints   []model.Point
}

// Result is the geometry of one laid-out view in diagram pixels.
type Result struct {
	Width  float64
	Height float64
	Nodes  []PositionedNode
	Edges  []RoutedEdge
}

// Resolve maps parsed engine records back to the submitted graph and
// transforms all geometry into diagram space. Any id that was not part of
// g is an UNRESOLVED_REFERENCE error. Records are returned in engine order.
func Resolve(l *plain.Layout, g *Graph, scale float64) (*Result, error) {
	if l.Graph == nil {
		if len(l.Nodes) == 0 && len(l.Edges) == 0 {
			return &Result{}, nil
		}
		return nil, errors.New(errors.ErrCodeEngine, "layout output has no graph record")
	}

	t := NewTransform(scale, l.Graph.Height)
	res := &Result{
		Width:  l.Graph.Width * scale,
		Height: t.CanvasHeight(),
		Nodes:  make([]PositionedNode, 0, len(l.Nodes)),
		Edges:  make([]RoutedEdge, 0, len(l.Edges)),
	}

	bounds := make(map[*model.Element]model.Bounds, len(l.Nodes))
	for _, n := range l.Nodes {
		e, ok := g.Element(n.ID)
		if !ok {
			return nil, errors.Unresolved("element", n.ID)
		}
		if _, dup := bounds[e]; dup {
			continue
		}
		b := t.Bounds(n)
		bounds[e] = b
		res.Nodes = append(res.Nodes, PositionedNode{Element: e, Bounds: b})
	}

	for _, ed := range l.Edges {
		rel, ok := g.Relationship(ed.Label)
		if !ok {
			return nil, errors.Unresolved("relationship", ed.Label)
		}
		// Edges were submitted target -> source.
		target, ok := g.Element(ed.Tail)
		if !ok {
			return nil, errors.Unresolved("element", ed.Tail)
		}
		source, ok := g.Element(ed.Head)
		if !ok {
			return nil, errors.Unresolved("element", ed.Head)
		}
		if source != rel.Source || target != rel.Target {
			return nil, errors.New(errors.ErrCodeEngine,
				"edge %s reported as %s->%s but relationship connects %s->%s",
				rel.ID, source.ID, target.ID, rel.Source.ID, rel.Target.ID)
		}

		sb, ok := bounds[source]
		if !ok {
			return nil, errors.Unresolved("element", source.ID)
		}
		tb, ok := bounds[target]
		if !ok {
			return nil, errors.Unresolved("element", target.ID)
		}

		res.Edges = append(res.Edges, RoutedEdge{
			Relationship: rel,
			Source:       source,
			Target:       target,
			Bendpoints:   Prune(t.Bendpoints(ed.Points), sb, tb),
		})
	}
	return res, nil
}
