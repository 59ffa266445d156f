package layout

import (
	"bytes"
	"fmt"
	"strconv"
)

// Default styling hints.
const (
	DefaultNodeWidth  = 1.0 // inches
	DefaultNodeHeight = 0.5 // inches
	DefaultDPI        = 110.0
	DefaultSplines    = "ortho"
	DefaultRankDir    = "TB"
)

// Style holds the global attributes submitted with every layout graph.
type Style struct {
	NodeWidth  float64 `json:"node_width,omitempty" toml:"node_width" yaml:"node_width"`
	NodeHeight float64 `json:"node_height,omitempty" toml:"node_height" yaml:"node_height"`
	DPI        float64 `json:"dpi,omitempty" toml:"dpi" yaml:"dpi"`
	Splines    string  `json:"splines,omitempty" toml:"splines" yaml:"splines"`
	RankDir    string  `json:"rankdir,omitempty" toml:"rankdir" yaml:"rankdir"`
}

// DefaultStyle returns fixed-size 1.0x0.5 boxes, orthogonal routing,
// top-to-bottom ranks and 110 dpi.
func DefaultStyle() Style {
	return Style{
		NodeWidth:  DefaultNodeWidth,
		NodeHeight: DefaultNodeHeight,
		DPI:        DefaultDPI,
		Splines:    DefaultSplines,
		RankDir:    DefaultRankDir,
	}
}

// WithDefaults fills zero fields from DefaultStyle.
func (s Style) WithDefaults() Style {
	d := DefaultStyle()
	if s.NodeWidth == 0 {
		s.NodeWidth = d.NodeWidth
	}
	if s.NodeHeight == 0 {
		s.NodeHeight = d.NodeHeight
	}
	if s.DPI == 0 {
		s.DPI = d.DPI
	}
	if s.Splines == "" {
		s.Splines = d.Splines
	}
	if s.RankDir == "" {
		s.RankDir = d.RankDir
	}
	return s
}

var validSplines = map[string]bool{"ortho": true, "spline": true, "polyline": true, "line": true, "curved": true}

// Validate checks the splines and rankdir values.
func (s Style) Validate() error {
	if !validSplines[s.Splines] {
		return fmt.Errorf("invalid splines: %q (must be one of: ortho, spline, polyline, line, curved)", s.Splines)
	}
	switch s.RankDir {
	case "TB", "BT", "LR", "RL":
	default:
		return fmt.Errorf("invalid rankdir: %q (must be one of: TB, BT, LR, RL)", s.RankDir)
	}
	if s.NodeWidth <= 0 || s.NodeHeight <= 0 || s.DPI <= 0 {
		return fmt.Errorf("node size and dpi must be positive")
	}
	return nil
}

// ToDOT serializes g to Graphviz DOT. Every edge carries its relationship id
// as label so the engine echoes it back in the edge record.
func ToDOT(g *Graph, style Style) []byte {
	style = style.WithDefaults()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", style.RankDir)
	fmt.Fprintf(&buf, "  splines=%s;\n", style.Splines)
	fmt.Fprintf(&buf, "  dpi=%s;\n", num(style.DPI))
	fmt.Fprintf(&buf, "  node [shape=box, fixedsize=true, width=%s, height=%s];\n", num(style.NodeWidth), num(style.NodeHeight))
	buf.WriteString("  edge [dir=none, headclip=false, tailclip=false];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, n.Label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.Tail, e.Head, e.ID)
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
