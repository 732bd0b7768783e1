package graph

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
)

// EdgeKind records how an edge came to exist.
type EdgeKind int

const (
	// Structural edges follow from sequence and parallel composition.
	Structural EdgeKind = iota
	// Explicit edges come from a `#{...}` dependency list. An edge that is
	// both structural and explicit is reported as Explicit.
	Explicit
)

func (k EdgeKind) String() string {
	if k == Explicit {
		return "explicit"
	}
	return "structural"
}

// Node is a declared atomic task.
type Node struct {
	ID       string
	Terminal bool
	// Decl is where the identifier was declared.
	Decl hcl.Range
}

// Edge is a directed dependency: To runs after From.
type Edge struct {
	From string
	To   string
	Kind EdgeKind
	// Subject points at the dependency reference for explicit edges and is
	// nil for purely structural ones.
	Subject *hcl.Range
}

// Graph is an immutable dependency graph.
type Graph struct {
	nodes []Node
	index map[string]int
	edges []Edge
	succ  map[string][]string
	pred  map[string][]string
}

// New creates a graph from the given nodes and edges. Both slices are
// copied. Edge endpoints are not required to be declared nodes; checking
// that is the validator's job.
func New(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		nodes: append([]Node(nil), nodes...),
		edges: append([]Edge(nil), edges...),
		index: make(map[string]int, len(nodes)),
		succ:  make(map[string][]string),
		pred:  make(map[string][]string),
	}

	sort.Slice(g.nodes, func(i, j int) bool { return g.nodes[i].ID < g.nodes[j].ID })
	for i, n := range g.nodes {
		g.index[n.ID] = i
	}

	sort.Slice(g.edges, func(i, j int) bool { return Less(g.edges[i], g.edges[j]) })
	for _, e := range g.edges {
		g.succ[e.From] = append(g.succ[e.From], e.To)
		g.pred[e.To] = append(g.pred[e.To], e.From)
	}
	return g
}

// Less orders edges by (From, To).
func Less(a, b Edge) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
}

// Nodes returns the declared nodes sorted by identifier.
func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// IDs returns the declared identifiers in sorted order.
func (g *Graph) IDs() []string {
	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}
	return ids
}

// Node looks up a declared node.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// HasNode reports whether id was declared.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Edges returns all edges sorted by (From, To).
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// HasEdge reports whether the edge from -> to exists.
func (g *Graph) HasEdge(from, to string) bool {
	succ := g.succ[from]
	i := sort.SearchStrings(succ, to)
	return i < len(succ) && succ[i] == to
}

// Successors returns the targets of edges leaving id, sorted.
func (g *Graph) Successors(id string) []string {
	return append([]string(nil), g.succ[id]...)
}

// Predecessors returns the sources of edges entering id, sorted.
func (g *Graph) Predecessors(id string) []string {
	return append([]string(nil), g.pred[id]...)
}

// Len is the number of declared nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount is the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
