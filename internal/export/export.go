// Package export writes a validated graph in the formats downstream
// renderers consume. Output order is the graph's sorted order, so equal
// graphs always produce identical bytes.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/specialistvlad/flowgraph/internal/graph"
)

// Format selects an output encoding.
type Format int

const (
	// JSON is {"nodes":[...],"edges":[{"from","to","kind"}]}.
	JSON Format = iota
	// DOT is a Graphviz digraph.
	DOT
	// Edges is one "from -> to" line per edge.
	Edges
)

// ErrUnknownFormat is returned for format names ParseFormat does not know.
var ErrUnknownFormat = errors.New("unknown export format")

var formatNames = map[Format]string{
	JSON:  "json",
	DOT:   "dot",
	Edges: "edges",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Formats lists the accepted format names.
func Formats() []string {
	return []string{JSON.String(), DOT.String(), Edges.String()}
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(name, n) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
}

type jsonNode struct {
	ID       string `json:"id"`
	Terminal bool   `json:"terminal,omitempty"`
}

type jsonEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"kind"`
}

type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

// Write encodes g to w.
func Write(w io.Writer, g *graph.Graph, format Format) error {
	switch format {
	case JSON:
		return writeJSON(w, g)
	case DOT:
		return writeDOT(w, g)
	case Edges:
		return writeEdges(w, g)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

func writeJSON(w io.Writer, g *graph.Graph) error {
	out := jsonGraph{Nodes: []jsonNode{}, Edges: []jsonEdge{}}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, jsonNode{ID: n.ID, Terminal: n.Terminal})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, jsonEdge{From: e.From, To: e.To, Kind: e.Kind.String()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeDOT(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph flow {")
	for _, n := range g.Nodes() {
		if n.Terminal {
			fmt.Fprintf(bw, "  %s [peripheries=2];\n", strconv.Quote(n.ID))
			continue
		}
		fmt.Fprintf(bw, "  %s;\n", strconv.Quote(n.ID))
	}
	for _, e := range g.Edges() {
		if e.Kind == graph.Explicit {
			fmt.Fprintf(bw, "  %s -> %s [label=\"dep\"];\n", strconv.Quote(e.From), strconv.Quote(e.To))
			continue
		}
		fmt.Fprintf(bw, "  %s -> %s;\n", strconv.Quote(e.From), strconv.Quote(e.To))
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func writeEdges(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%s -> %s\n", e.From, e.To)
	}
	return bw.Flush()
}
