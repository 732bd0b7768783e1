package engine

import (
	"context"
	"fmt"

	"github.com/specialistvlad/flowgraph/internal/ast"
	"github.com/specialistvlad/flowgraph/internal/ctxlog"
	"github.com/specialistvlad/flowgraph/internal/dag"
	"github.com/specialistvlad/flowgraph/internal/graph"
	"github.com/specialistvlad/flowgraph/internal/syntax"
	"github.com/specialistvlad/flowgraph/internal/validator"
)

// Options tune a compilation.
type Options struct {
	// MaxDepth bounds composite nesting. Zero or less selects
	// syntax.DefaultMaxDepth.
	MaxDepth int
}

// Result is a successfully compiled program.
type Result struct {
	Program *ast.Program
	Graph   *graph.Graph
}

// Compile parses, builds and validates src. filename only labels source
// ranges and may be empty.
func Compile(ctx context.Context, filename string, src []byte, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx).With("filename", filename)
	logger.Debug("Compile started.", "bytes", len(src))

	prog, err := Parse(ctx, filename, src, opts)
	if err != nil {
		return nil, err
	}

	g, err := dag.Build(ctx, prog)
	if err != nil {
		logger.Debug("Graph construction failed.", "error", err)
		return nil, fmt.Errorf("failed to build dependency graph: %w", err)
	}

	if err := validator.Validate(ctx, g); err != nil {
		logger.Debug("Graph validation failed.", "error", err)
		return nil, fmt.Errorf("invalid dependency graph: %w", err)
	}

	logger.Debug("Compile finished.", "node_count", g.Len(), "edge_count", g.EdgeCount())
	return &Result{Program: prog, Graph: g}, nil
}

// Parse runs only the syntax stage. It is what the formatter needs.
func Parse(ctx context.Context, filename string, src []byte, opts Options) (*ast.Program, error) {
	logger := ctxlog.FromContext(ctx).With("stage", "parse")

	prog, err := syntax.Parse(filename, src, syntax.WithMaxDepth(opts.MaxDepth))
	if err != nil {
		logger.Debug("Parse failed.", "error", err)
		return nil, fmt.Errorf("failed to parse program: %w", err)
	}
	logger.Debug("Parse finished.", "depth", ast.Depth(prog.Body))
	return prog, nil
}
