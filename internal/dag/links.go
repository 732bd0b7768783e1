package dag

import (
	"context"
	"fmt"

	"github.com/specialistvlad/flowgraph/internal/ast"
	"github.com/specialistvlad/flowgraph/internal/ctxlog"
	"github.com/specialistvlad/flowgraph/internal/graph"
	"github.com/specialistvlad/flowgraph/internal/topologystore"
)

// linker performs the second pass, establishing dependency edges.
type linker struct {
	ctx   context.Context
	store topologystore.Store
}

// link reduces n to its fragment, adding every edge inside n on the way.
// Children are fully linked before their parent.
func (l *linker) link(n ast.Node) (fragment, error) {
	var (
		frag fragment
		err  error
	)
	switch v := n.(type) {
	case *ast.Atomic:
		frag = fragment{entry: newIDSet(v.ID), exit: newIDSet(v.ID)}
	case *ast.Sequence:
		frag, err = l.linkSequence(v)
	case *ast.Parallel:
		frag, err = l.linkParallel(v)
	default:
		return fragment{}, fmt.Errorf("dag: unexpected node type %T", n)
	}
	if err != nil {
		return fragment{}, err
	}

	d := n.Decor()
	if d.Terminal {
		frag.exit = newIDSet()
	}
	if err := l.linkExplicitDeps(d.Deps, frag.entry); err != nil {
		return fragment{}, err
	}
	return frag, nil
}

func (l *linker) linkSequence(seq *ast.Sequence) (fragment, error) {
	out := fragment{entry: newIDSet(), exit: newIDSet()}
	var prev *fragment
	for i, c := range seq.Children {
		frag, err := l.link(c)
		if err != nil {
			return fragment{}, err
		}
		if i == 0 {
			out.entry = frag.entry
		} else if err := l.connect(prev.exit, frag.entry); err != nil {
			return fragment{}, err
		}
		prev = &frag
	}
	if prev != nil {
		out.exit = prev.exit
	}
	return out, nil
}

func (l *linker) linkParallel(par *ast.Parallel) (fragment, error) {
	out := fragment{entry: newIDSet(), exit: newIDSet()}
	for _, c := range par.Children {
		frag, err := l.link(c)
		if err != nil {
			return fragment{}, err
		}
		out.entry.union(frag.entry)
		out.exit.union(frag.exit)
	}
	return out, nil
}

// connect adds the structural edges from every exit in from to every
// entry in to.
func (l *linker) connect(from, to *idSet) error {
	if from.len() == 0 || to.len() == 0 {
		return nil
	}
	logger := ctxlog.FromContext(l.ctx)
	for _, f := range from.ids {
		for _, t := range to.ids {
			logger.Debug("Linking structural dependency.", "from", f, "to", t)
			if err := l.store.AddEdge(l.ctx, graph.Edge{From: f, To: t, Kind: graph.Structural}); err != nil {
				return err
			}
		}
	}
	return nil
}
