package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/flowgraph/internal/diagnostics"
	"github.com/specialistvlad/flowgraph/internal/engine"
	"github.com/specialistvlad/flowgraph/internal/export"
	"github.com/specialistvlad/flowgraph/internal/fsutil"
	"go.uber.org/multierr"
)

// Check compiles the program and prints a one-line summary.
func (a *App) Check(ctx context.Context, in Input) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Check started.", "filename", in.Filename)

	res, err := a.compile(ctx, in)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.outW, "%s: ok (%d tasks, %d edges)\n", in.Filename, res.Graph.Len(), res.Graph.EdgeCount())
	return err
}

// Graph compiles the program and writes its graph to w in the given format.
// A nil w writes to the app's output.
func (a *App) Graph(ctx context.Context, in Input, format export.Format, w io.Writer) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Graph started.", "filename", in.Filename, "format", format)

	res, err := a.compile(ctx, in)
	if err != nil {
		return err
	}
	if w == nil {
		w = a.outW
	}
	if err := export.Write(w, res.Graph, format); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	a.logger.Debug("Graph written.", "node_count", res.Graph.Len(), "edge_count", res.Graph.EdgeCount())
	return nil
}

// Fmt prints the program in canonical form. Only syntax is checked, so a
// program with dangling dependencies can still be formatted.
func (a *App) Fmt(ctx context.Context, in Input) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Fmt started.", "filename", in.Filename)

	prog, err := engine.Parse(ctx, in.Filename, in.Source, a.options())
	if err != nil {
		return a.reject(in, err)
	}
	_, err = fmt.Fprintln(a.outW, prog.String())
	return err
}

func (a *App) compile(ctx context.Context, in Input) (*engine.Result, error) {
	res, err := engine.Compile(ctx, in.Filename, in.Source, a.options())
	if err != nil {
		return nil, a.reject(in, err)
	}
	return res, nil
}

func (a *App) options() engine.Options {
	return engine.Options{MaxDepth: a.config.MaxDepth}
}

// reject prints diagnostics for a failed compilation.
func (a *App) reject(in Input, err error) error {
	a.logger.Debug("Program rejected.", "filename", in.Filename, "error", err)
	diags := diagnostics.FromError(err)
	out := a.config.Output
	if werr := diagnostics.Write(a.errW, in.Filename, in.Source, diags, out.Width, out.Color); werr != nil {
		a.logger.Error("Failed to write diagnostics.", "error", werr)
	}
	return fmt.Errorf("%w: %s: %d error(s)", ErrInvalidProgram, in.Filename, len(diags))
}

// CheckDir checks every program below dir. All programs are checked even
// when some fail; the returned error wraps ErrInvalidProgram when any did.
func (a *App) CheckDir(ctx context.Context, dir string) error {
	files, err := fsutil.FindPrograms(dir)
	if err != nil {
		return fmt.Errorf("failed to list programs: %w", err)
	}
	a.logger.Debug("App.CheckDir started.", "dir", dir, "program_count", len(files))

	var errs error
	for _, path := range files {
		in, err := ReadInput("", path)
		if err == nil {
			err = a.Check(ctx, in)
		}
		errs = multierr.Append(errs, err)
	}

	failed := len(multierr.Errors(errs))
	if _, err := fmt.Fprintf(a.outW, "%d program(s) checked, %d invalid\n", len(files), failed); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}
