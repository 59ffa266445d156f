package export

import "github.com/matzehuels/archiview/pkg/model"

// Model is the serialized form of a model.
type Model struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Documentation string         `json:"documentation,omitempty"`
	Version       string         `json:"version,omitempty"`
	Properties    []Property     `json:"properties,omitempty"`
	Elements      []Element      `json:"elements"`
	Relationships []Relationship `json:"relationships"`
	Diagrams      []Diagram      `json:"diagrams"`
}

// Property is a key/value pair. Key is the name of the property definition.
type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Element is the serialized form of an element.
type Element struct {
	ID            string     `json:"id"`
	Kind          string     `json:"kind"`
	Name          string     `json:"name"`
	Documentation string     `json:"documentation,omitempty"`
	Properties    []Property `json:"properties,omitempty"`
}

// Relationship is the serialized form of a relationship.
// Source and Target are element ids.
type Relationship struct {
	ID            string     `json:"id"`
	Kind          string     `json:"kind"`
	Name          string     `json:"name,omitempty"`
	Documentation string     `json:"documentation,omitempty"`
	Source        string     `json:"source"`
	Target        string     `json:"target"`
	Properties    []Property `json:"properties,omitempty"`
}

// Diagram is the serialized form of a rendered view.
type Diagram struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Viewpoint   string       `json:"viewpoint"`
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
}

// Node places an element (by id) in a diagram.
type Node struct {
	ID      string       `json:"id"`
	Element string       `json:"element"`
	Bounds  model.Bounds `json:"bounds"`
}

// Connection draws a relationship (by id) between two nodes (by id).
type Connection struct {
	ID           string        `json:"id"`
	Relationship string        `json:"relationship"`
	Source       string        `json:"source"`
	Target       string        `json:"target"`
	Bendpoints   []model.Point `json:"bendpoints"`
}

// FromModel converts a model to its serialized form.
func FromModel(m *model.Model) Model {
	out := Model{
		ID:            m.ID,
		Name:          m.Name,
		Documentation: m.Documentation,
		Version:       m.Version,
		Properties:    properties(m.Properties),
		Elements:      make([]Element, len(m.Elements)),
		Relationships: make([]Relationship, len(m.Relationships)),
		Diagrams:      make([]Diagram, len(m.Diagrams)),
	}
	for i, e := range m.Elements {
		out.Elements[i] = Element{
			ID:            e.ID,
			Kind:          string(e.Kind),
			Name:          e.Name,
			Documentation: e.Documentation,
			Properties:    properties(e.Properties),
		}
	}
	for i, r := range m.Relationships {
		out.Relationships[i] = Relationship{
			ID:            r.ID,
			Kind:          string(r.Kind),
			Name:          r.Name,
			Documentation: r.Documentation,
			Source:        r.Source.ID,
			Target:        r.Target.ID,
			Properties:    properties(r.Properties),
		}
	}
	for i, d := range m.Diagrams {
		out.Diagrams[i] = FromDiagram(d)
	}
	return out
}

// FromDiagram converts a single diagram.
func FromDiagram(d *model.Diagram) Diagram {
	out := Diagram{
		ID:          d.ID,
		Name:        d.Name,
		Viewpoint:   d.Viewpoint,
		Width:       d.Width,
		Height:      d.Height,
		Nodes:       make([]Node, len(d.Nodes)),
		Connections: make([]Connection, len(d.Connections)),
	}
	for i, n := range d.Nodes {
		out.Nodes[i] = Node{ID: n.ID, Element: n.Element.ID, Bounds: n.Bounds}
	}
	for i, c := range d.Connections {
		bends := c.Bendpoints
		if bends == nil {
			bends = []model.Point{}
		}
		out.Connections[i] = Connection{
			ID:           c.ID,
			Relationship: c.Relationship.ID,
			Source:       c.Source.ID,
			Target:       c.Target.ID,
			Bendpoints:   bends,
		}
	}
	return out
}

func properties(props []model.Property) []Property {
	if len(props) == 0 {
		return nil
	}
	out := make([]Property, len(props))
	for i, p := range props {
		out[i] = Property{Key: p.Key(), Value: p.Value}
	}
	return out
}
