package model

// Bounds is a rectangle in diagram pixel space (origin top-left, y down).
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (b Bounds) Right() float64 { return b.X + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b Bounds) Bottom() float64 { return b.Y + b.Height }

// Center returns the center point of the rectangle.
func (b Bounds) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Point is a location in diagram pixel space, used for bend points.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Inside reports whether p lies within b, edges included.
func (p Point) Inside(b Bounds) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}

// ViewNode is the positioned representation of an Element in one Diagram.
type ViewNode struct {
	ID      string
	Element *Element
	Bounds  Bounds
}

// Connection is the routed representation of a Relationship in one Diagram.
// Source and Target point at ViewNodes of the same Diagram.
type Connection struct {
	ID           string
	Relationship *Relationship
	Source       *ViewNode
	Target       *ViewNode
	Bendpoints   []Point
}

// Diagram is the rendered output of a view.
type Diagram struct {
	ID          string
	Name        string
	Viewpoint   string
	Width       float64 // canvas size in pixels
	Height      float64
	Nodes       []*ViewNode
	Connections []*Connection
}

// NodeFor returns the ViewNode that visualizes e, if any.
func (d *Diagram) NodeFor(e *Element) (*ViewNode, bool) {
	for _, n := range d.Nodes {
		if n.Element == e {
			return n, true
		}
	}
	return nil, false
}

// ConnectionFor returns the Connection that visualizes r, if any.
func (d *Diagram) ConnectionFor(r *Relationship) (*Connection, bool) {
	for _, c := range d.Connections {
		if c.Relationship == r {
			return c, true
		}
	}
	return nil, false
}
