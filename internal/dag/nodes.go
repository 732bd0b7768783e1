package dag

import (
	"context"

	"github.com/specialistvlad/flowgraph/internal/ast"
	"github.com/specialistvlad/flowgraph/internal/ctxlog"
	"github.com/specialistvlad/flowgraph/internal/graph"
	"github.com/specialistvlad/flowgraph/internal/topologystore"
)

// declareNodes performs the first pass of graph creation.
func declareNodes(ctx context.Context, prog *ast.Program, store topologystore.Store) error {
	logger := ctxlog.FromContext(ctx)

	var dups []Duplicate
	for _, a := range ast.Atomics(prog.Body) {
		if prev, exists := store.LookupNode(ctx, a.ID); exists {
			logger.Warn("Duplicate identifier declaration.", "identifier", a.ID)
			dups = append(dups, Duplicate{ID: a.ID, First: prev.Decl, Again: a.Range})
			continue
		}
		n := graph.Node{ID: a.ID, Terminal: a.Terminal, Decl: a.Range}
		if err := store.AddNode(ctx, n); err != nil {
			return err
		}
	}
	if len(dups) > 0 {
		return &DuplicateIdentifierError{Duplicates: dups}
	}

	logger.Debug("Node declaration complete.", "node_count", len(store.Nodes(ctx)))
	return nil
}
