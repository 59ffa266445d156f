package layout

import (
	"slices"

	"github.com/matzehuels/archiview/pkg/layout/plain"
	"github.com/matzehuels/archiview/pkg/model"
)

// Scale is the number of diagram pixels per engine unit.
const Scale = DefaultDPI

// controlStride is the number of raw control points per spline segment.
// Graphviz emits 3n+1 cubic Bézier control points; keeping every third
// (starting at the first) leaves one point per segment boundary.
const controlStride = 3

// Transform maps engine coordinates (inches, origin bottom-left) to diagram
// coordinates (pixels, origin top-left).
type Transform struct {
	Scale  float64 // pixels per engine unit
	Height float64 // canvas height in engine units
}

// NewTransform returns the transform for a canvas of the given engine height.
func NewTransform(scale, height float64) Transform {
	return Transform{Scale: scale, Height: height}
}

// CanvasHeight returns the canvas height in pixels.
func (t Transform) CanvasHeight() float64 { return t.Height * t.Scale }

// Point maps an engine coordinate to a diagram pixel location.
func (t Transform) Point(x, y float64) model.Point {
	return model.Point{
		X: x * t.Scale,
		Y: t.CanvasHeight() - y*t.Scale,
	}
}

// Bounds maps a node record (center and size) to a top-left anchored box.
func (t Transform) Bounds(n *plain.Node) model.Bounds {
	c := t.Point(n.X, n.Y)
	w := n.Width * t.Scale
	h := n.Height * t.Scale
	return model.Bounds{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// Bendpoints reduces raw control points to one point per spline segment,
// reverses them into source-to-target order and maps them to pixels.
func (t Transform) Bendpoints(points []plain.Point) []model.Point {
	var out []model.Point
	for i := 0; i < len(points); i += controlStride {
		out = append(out, t.Point(points[i].X, points[i].Y))
	}
	slices.Reverse(out)
	return out
}

// Prune drops every point that lies inside any of the given boxes.
// The result is never nil.
func Prune(points []model.Point, boxes ...model.Bounds) []model.Point {
	out := make([]model.Point, 0, len(points))
	for _, p := range points {
		if !insideAny(p, boxes) {
			out = append(out, p)
		}
	}
	return out
}

func insideAny(p model.Point, boxes []model.Bounds) bool {
	for _, b := range boxes {
		if p.Inside(b) {
			return true
		}
	}
	return false
}
