// Package enginetest provides a deterministic layout engine for tests.
//
// Grid reads the DOT produced by layout.ToDOT and answers in Graphviz plain
// format without running Graphviz: nodes sit in one row at fixed spacing and
// every edge detours above the row, so each connection keeps exactly one
// bend point after pruning.
package enginetest

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync/atomic"
)

const (
	spacing = 1.5 // inches between node centers
	rowY    = 1.0 // node center height
	detourY = 1.8 // edge detour height
	height  = 2.0 // canvas height
	nodeW   = 1.0 // fixed node width
	nodeH   = 0.5 // fixed node height
)

var (
	quoted = `"(?:[^"\\]|\\.)*"`
	nodeRe = regexp.MustCompile(`^\s*(` + quoted + `) \[label=(` + quoted + `)\];$`)
	edgeRe = regexp.MustCompile(`^\s*(` + quoted + `) -> (` + quoted + `) \[label=(` + quoted + `)\];$`)
)

// Grid is a layout engine placing nodes on a single row.
type Grid struct {
	calls atomic.Int64
}

// Name returns "grid".
func (*Grid) Name() string { return "grid" }

// Calls returns how many layouts were requested.
func (g *Grid) Calls() int { return int(g.calls.Load()) }

// X returns the center abscissa, in inches, of the i-th node.
func X(i int) float64 { return 0.5 + spacing*float64(i) }

// Layout answers with plain output for dot.
func (g *Grid) Layout(ctx context.Context, dot []byte) ([]byte, error) {
	g.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type edge struct{ tail, head, label string }
	var nodes []string
	labels := map[string]string{}
	var edges []edge

	for _, line := range bytes.Split(dot, []byte("\n")) {
		if m := edgeRe.FindSubmatch(line); m != nil {
			edges = append(edges, edge{unquote(m[1]), unquote(m[2]), unquote(m[3])})
			continue
		}
		if m := nodeRe.FindSubmatch(line); m != nil {
			id := unquote(m[1])
			nodes = append(nodes, id)
			labels[id] = unquote(m[2])
		}
	}

	pos := make(map[string]int, len(nodes))
	var buf bytes.Buffer
	width := X(len(nodes)-1) + 0.5
	fmt.Fprintf(&buf, "graph 1 %g %g\n", width, height)
	for i, id := range nodes {
		pos[id] = i
		fmt.Fprintf(&buf, "node %q %g %g %g %g %q solid box black lightgrey\n", id, X(i), rowY, nodeW, nodeH, labels[id])
	}
	for _, e := range edges {
		xt, xh := X(pos[e.tail]), X(pos[e.head])
		xm := (xt + xh) / 2
		if xt == xh {
			xm = xt + nodeW
		}
		fmt.Fprintf(&buf, "edge %q %q 7 %g %g %g %g %g %g %g %g %g %g %g %g %g %g %q %g %g solid black\n",
			e.tail, e.head,
			xt, rowY, xt, detourY-0.2, xm, detourY, xm, detourY, xm, detourY, xh, detourY-0.2, xh, rowY,
			e.label, xm, detourY)
	}
	buf.WriteString("stop\n")
	return buf.Bytes(), nil
}

func unquote(b []byte) string {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return string(b)
	}
	return s
}
