package layout

import (
	"github.com/matzehuels/archiview/pkg/model"
)

// IsolatedPolicy decides what happens to selected elements that take part in
// no relationship of the view.
type IsolatedPolicy int

const (
	// IsolatedExclude lays out only relationship endpoints. Elements without a
	// relationship in the view do not appear in the diagram.
	IsolatedExclude IsolatedPolicy = iota
	// IsolatedInclude adds unconnected elements as free-standing nodes and
	// lets the engine place them.
	IsolatedInclude
)

// String returns the policy name used in flags and model files.
func (p IsolatedPolicy) String() string {
	if p == IsolatedInclude {
		return "include"
	}
	return "exclude"
}

// ParseIsolatedPolicy parses "include" or "exclude" ("" means exclude).
func ParseIsolatedPolicy(s string) (IsolatedPolicy, bool) {
	switch s {
	case "", "exclude":
		return IsolatedExclude, true
	case "include":
		return IsolatedInclude, true
	}
	return IsolatedExclude, false
}

// Node is a layout-graph vertex standing for one element.
type Node struct {
	ID      string // element id, used as the engine node name
	Label   string // element name
	Element *model.Element
}

// Edge is a layout-graph edge standing for one relationship. Tail and Head
// are engine-direction endpoints: Tail is the relationship's target and
// Head its source.
type Edge struct {
	ID           string // relationship id, carried as the engine edge label
	Tail         string
	Head         string
	Relationship *model.Relationship
}

// Graph is the abstract graph submitted to a layout engine.
type Graph struct {
	Nodes []Node
	Edges []Edge

	elements      map[string]*model.Element
	relationships map[string]*model.Relationship
}

// Build constructs the layout graph for a view. Nodes are the union of
// relationship endpoints in first-seen order (source before target); with
// IsolatedInclude the remaining elements follow in their input order.
func Build(elements []*model.Element, relationships []*model.Relationship, policy IsolatedPolicy) *Graph {
	g := &Graph{
		elements:      make(map[string]*model.Element),
		relationships: make(map[string]*model.Relationship, len(relationships)),
	}

	for _, r := range relationships {
		g.addNode(r.Source)
		g.addNode(r.Target)
	}
	if policy == IsolatedInclude {
		for _, e := range elements {
			g.addNode(e)
		}
	}

	for _, r := range relationships {
		g.Edges = append(g.Edges, Edge{
			ID:           r.ID,
			Tail:         r.Target.ID,
			Head:         r.Source.ID,
			Relationship: r,
		})
		g.relationships[r.ID] = r
	}
	return g
}

func (g *Graph) addNode(e *model.Element) {
	if _, seen := g.elements[e.ID]; seen {
		return
	}
	g.elements[e.ID] = e
	g.Nodes = append(g.Nodes, Node{ID: e.ID, Label: e.Name, Element: e})
}

// Element resolves a submitted node id.
func (g *Graph) Element(id string) (*model.Element, bool) {
	e, ok := g.elements[id]
	return e, ok
}

// Relationship resolves a submitted edge id.
func (g *Graph) Relationship(id string) (*model.Relationship, bool) {
	r, ok := g.relationships[id]
	return r, ok
}

// Empty reports whether the graph has no nodes.
func (g *Graph) Empty() bool { return len(g.Nodes) == 0 }
