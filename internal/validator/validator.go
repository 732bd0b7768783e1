package validator

import (
	"context"
	"sort"

	"github.com/specialistvlad/flowgraph/internal/ctxlog"
	"github.com/specialistvlad/flowgraph/internal/graph"
	"go.uber.org/multierr"
)

// Validate runs every check against g and returns their combined errors,
// or nil when the graph may be handed to a renderer.
func Validate(ctx context.Context, g *graph.Graph) error {
	logger := ctxlog.FromContext(ctx).With("stage", "validate")
	logger.Debug("Validate: Starting.", "node_count", g.Len(), "edge_count", g.EdgeCount())

	var errs error
	if err := checkMissing(g); err != nil {
		logger.Debug("Validate: Missing dependencies found.", "identifiers", err.Identifiers)
		errs = multierr.Append(errs, err)
	}
	if err := checkCycles(g); err != nil {
		logger.Debug("Validate: Cycle found.", "cycle", err.Cycle)
		errs = multierr.Append(errs, err)
	}

	if errs == nil {
		logger.Debug("Validate: Graph is valid.")
	}
	return errs
}

// checkMissing reports every edge endpoint that is not a declared node.
func checkMissing(g *graph.Graph) *MissingDependencyError {
	seen := make(map[string]struct{})
	var refs []Reference
	note := func(id string, e graph.Edge) {
		if g.HasNode(id) {
			return
		}
		seen[id] = struct{}{}
		if id == e.From {
			refs = append(refs, Reference{Identifier: id, Target: e.To, Subject: e.Subject})
		}
	}
	for _, e := range g.Edges() {
		note(e.From, e)
		note(e.To, e)
	}
	if len(seen) == 0 {
		return nil
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].Identifier != refs[j].Identifier {
			return refs[i].Identifier < refs[j].Identifier
		}
		return refs[i].Target < refs[j].Target
	})
	return &MissingDependencyError{Identifiers: ids, References: refs}
}
