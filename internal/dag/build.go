package dag

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/flowgraph/internal/ast"
	"github.com/specialistvlad/flowgraph/internal/ctxlog"
	"github.com/specialistvlad/flowgraph/internal/graph"
	"github.com/specialistvlad/flowgraph/internal/inmemorytopology"
	"github.com/specialistvlad/flowgraph/internal/topologystore"
)

// Build constructs the dependency graph of a program. The graph is not
// validated; pass it to the validator before handing it on.
func Build(ctx context.Context, prog *ast.Program) (*graph.Graph, error) {
	return BuildWithStore(ctx, prog, inmemorytopology.New())
}

// BuildWithStore is Build with a caller supplied topology store. The store
// should be empty.
func BuildWithStore(ctx context.Context, prog *ast.Program, store topologystore.Store) (*graph.Graph, error) {
	if prog == nil || prog.Body == nil {
		return nil, errors.New("dag: nil program")
	}
	logger := ctxlog.FromContext(ctx).With("stage", "build")
	logger.Debug("Build: Starting graph construction.")

	// First pass: declare every atomic node.
	if err := declareNodes(ctx, prog, store); err != nil {
		return nil, err
	}

	// Second pass: structural and explicit edges.
	l := &linker{ctx: ctx, store: store}
	if _, err := l.link(prog.Body); err != nil {
		return nil, fmt.Errorf("error linking dependency graph: %w", err)
	}

	g := graph.New(store.Nodes(ctx), store.Edges(ctx))
	logger.Debug("Build: Graph construction successful.", "node_count", g.Len(), "edge_count", g.EdgeCount())
	return g, nil
}
