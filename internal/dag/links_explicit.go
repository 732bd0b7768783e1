package dag

import (
	"github.com/specialistvlad/flowgraph/internal/ast"
	"github.com/specialistvlad/flowgraph/internal/ctxlog"
	"github.com/specialistvlad/flowgraph/internal/graph"
)

// linkExplicitDeps resolves a `#{...}` list: every referenced identifier
// gets an edge to every entry of the decorated node. The reference need not
// be declared, and a terminal node is a valid target.
func (l *linker) linkExplicitDeps(deps []ast.Ref, entry *idSet) error {
	baseLogger := ctxlog.FromContext(l.ctx)
	for _, ref := range deps {
		logger := baseLogger.With("depends_on", ref.ID)
		subject := ref.Range
		for _, to := range entry.ids {
			logger.Debug("Linking explicit dependency.", "to", to)
			e := graph.Edge{From: ref.ID, To: to, Kind: graph.Explicit, Subject: &subject}
			if err := l.store.AddEdge(l.ctx, e); err != nil {
				return err
			}
		}
	}
	return nil
}
