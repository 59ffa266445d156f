// Package plain parses the line-oriented positional output of a layout engine.
//
// The protocol is Graphviz's "plain" format. Three record kinds are
// recognized; every other line (including "stop") is ignored:
//
//	graph <scale> <width> <height>
//	node <id> <x> <y> <width> <height> <label> <style> <shape> <color> <fill>
//	edge <tail> <head> <n> <x1> <y1> ... <xn> <yn> [<label> <xl> <yl>] <style> <color>
//
// Coordinates are engine units (inches) with the origin at the bottom-left.
// Tokens may be double-quoted; quotes are stripped and \" is unescaped.
// Lines that cannot be parsed as one of the record kinds produce no record
// and no error, so newer engines can add record kinds freely.
package plain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is one parsed protocol line: *Graph, *Node or *Edge.
type Record interface {
	kind() string
}

// Graph is the canvas record.
type Graph struct {
	Scale  float64
	Width  float64
	Height float64
}

// Node is a node center position and size.
type Node struct {
	ID     string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Label  string
}

// Point is a spline control point in engine units.
type Point struct {
	X float64
	Y float64
}

// Edge is a routed edge: spline control points from tail to head plus the
// label token, which carries the originating relationship id.
type Edge struct {
	Tail   string
	Head   string
	Points []Point
	Label  string
}

func (*Graph) kind() string { return "graph" }
func (*Node) kind() string  { return "node" }
func (*Edge) kind() string  { return "edge" }

// Layout collects the records of one engine run.
type Layout struct {
	Graph *Graph // nil if the output had no graph record
	Nodes []*Node
	Edges []*Edge
}

// Parse reads every line of r. It only fails when r itself fails.
func Parse(r io.Reader) (*Layout, error) {
	out := &Layout{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		switch rec := ParseLine(sc.Text()).(type) {
		case *Graph:
			out.Graph = rec
		case *Node:
			out.Nodes = append(out.Nodes, rec)
		case *Edge:
			out.Edges = append(out.Edges, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read layout output: %w", err)
	}
	return out, nil
}

// ParseLine parses a single protocol line. It returns nil for lines that are
// not a well-formed graph, node or edge record.
func ParseLine(line string) Record {
	cols := Tokenize(line)
	if len(cols) == 0 {
		return nil
	}
	switch cols[0] {
	case "graph":
		return parseGraph(cols[1:])
	case "node":
		return parseNode(cols[1:])
	case "edge":
		return parseEdge(cols[1:])
	}
	return nil
}

// graph scale width height
func parseGraph(cols []string) Record {
	nums, ok := floats(cols, 3)
	if !ok {
		return nil
	}
	return &Graph{Scale: nums[0], Width: nums[1], Height: nums[2]}
}

// node name x y width height label style shape color fillcolor
func parseNode(cols []string) Record {
	if len(cols) < 5 {
		return nil
	}
	nums, ok := floats(cols[1:], 4)
	if !ok {
		return nil
	}
	n := &Node{ID: cols[0], X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}
	if len(cols) > 5 {
		n.Label = cols[5]
	}
	return n
}

// edge tail head n x1 y1 .. xn yn [label xl yl] style color
func parseEdge(cols []string) Record {
	if len(cols) < 3 {
		return nil
	}
	count, err := strconv.Atoi(cols[2])
	if err != nil || count < 0 || count > (len(cols)-3)/2 {
		return nil
	}
	coords, ok := floats(cols[3:], 2*count)
	if !ok {
		return nil
	}
	e := &Edge{Tail: cols[0], Head: cols[1], Points: make([]Point, count)}
	for i := range e.Points {
		e.Points[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}

	// Without a label Graphviz writes exactly "style color" after the points.
	if rest := cols[3+2*count:]; len(rest) > 0 && len(rest) != 2 {
		e.Label = rest[0]
	}
	return e
}

// floats parses the first n tokens of cols as numbers.
func floats(cols []string, n int) ([]float64, bool) {
	if len(cols) < n {
		return nil, false
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(cols[i], 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Tokenize splits a protocol line on whitespace. Double-quoted tokens may
// contain whitespace; surrounding quotes are removed and \" and \\ are
// unescaped. An unterminated quote runs to the end of the line.
func Tokenize(line string) []string {
	var (
		tokens  []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	flush := func() {
		if started {
			tokens = append(tokens, cur.String())
			cur.Reset()
			started = false
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inQuote && c == '\\' && i+1 < len(line) && (line[i+1] == '"' || line[i+1] == '\\'):
			i++
			cur.WriteByte(line[i])
		case c == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (c == ' ' || c == '\t' || c == '\r'):
			flush()
		default:
			cur.WriteByte(c)
			started = true
		}
	}
	flush()
	return tokens
}
