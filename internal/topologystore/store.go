// Package topologystore defines the interface for accumulating the structure
// of a dependency graph while it is being built.
//
// The store is the mutable side of graph construction: the dag builder adds
// nodes and edges to it pass by pass, and once every pass is done the
// contents are frozen into an immutable graph.Graph. Keeping the two apart
// lets the builder stay independent of the storage backend.
package topologystore

import (
	"context"

	"github.com/specialistvlad/flowgraph/internal/graph"
)

// Store collects the nodes and edges of a graph under construction.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// AddNode registers a declared node. Adding a node whose ID is already
	// present is a no-op; the first declaration wins. Duplicate detection is
	// the builder's responsibility.
	AddNode(ctx context.Context, n graph.Node) error

	// LookupNode returns the node registered under id.
	LookupNode(ctx context.Context, id string) (graph.Node, bool)

	// AddEdge records the edge From -> To. Edges are unique on (From, To):
	// adding an existing pair merges it, an Explicit kind wins over a
	// Structural one and the first non-nil Subject is kept.
	//
	// Endpoints do not need to be registered nodes, so that references to
	// undeclared identifiers survive until validation.
	AddEdge(ctx context.Context, e graph.Edge) error

	// Nodes returns a snapshot of all registered nodes in unspecified order.
	Nodes(ctx context.Context) []graph.Node

	// Edges returns a snapshot of all edges in unspecified order.
	Edges(ctx context.Context) []graph.Edge
}
