// Package diagnostics turns compilation errors into hcl.Diagnostics and
// renders them with source snippets. Only the application layer prints; the
// compiler packages just return typed errors.
package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/flowgraph/internal/dag"
	"github.com/specialistvlad/flowgraph/internal/syntax"
	"github.com/specialistvlad/flowgraph/internal/validator"
	"go.uber.org/multierr"
)

// FromError converts err into diagnostics. Combined errors are split and
// every known error type found in the chain gets its own diagnostic with a
// source subject where one is known. An error with no known type becomes a
// single diagnostic carrying its message.
func FromError(err error) hcl.Diagnostics {
	if err == nil {
		return nil
	}
	diags := collect(err, nil)
	if len(diags) == 0 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Error",
			Detail:   err.Error(),
		})
	}
	return diags
}

func collect(err error, diags hcl.Diagnostics) hcl.Diagnostics {
	switch e := err.(type) {
	case *syntax.SyntaxError:
		return append(diags, syntaxDiag(e))
	case *syntax.DepthLimitError:
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Nesting too deep",
			Detail:   fmt.Sprintf("Programs may nest at most %d levels deep.", e.Limit),
			Subject:  rangePtr(e.Subject),
		})
	case *dag.DuplicateIdentifierError:
		return append(diags, duplicateDiags(e)...)
	case *validator.MissingDependencyError:
		return append(diags, missingDiags(e)...)
	case *validator.CircularDependencyError:
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Circular dependency",
			Detail:   fmt.Sprintf("The tasks depend on each other in a loop: %s.", strings.Join(e.Cycle, " -> ")),
		})
	}

	if errs := multierr.Errors(err); len(errs) > 1 {
		for _, e := range errs {
			diags = collect(e, diags)
		}
		return diags
	}
	if inner := errors.Unwrap(err); inner != nil {
		return collect(inner, diags)
	}
	return diags
}

func syntaxDiag(e *syntax.SyntaxError) *hcl.Diagnostic {
	var detail string
	switch {
	case len(e.Expected) > 0 && e.Found != "":
		detail = fmt.Sprintf("Expected %s, found %s.", strings.Join(e.Expected, ", "), e.Found)
	case len(e.Expected) > 0:
		detail = fmt.Sprintf("Expected %s.", strings.Join(e.Expected, ", "))
	case e.Found != "":
		detail = fmt.Sprintf("Unexpected %s.", e.Found)
	}
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Syntax error",
		Detail:   detail,
		Subject:  rangePtr(e.Subject),
	}
}

func duplicateDiags(e *dag.DuplicateIdentifierError) hcl.Diagnostics {
	diags := make(hcl.Diagnostics, 0, len(e.Duplicates))
	for _, d := range e.Duplicates {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Duplicate identifier",
			Detail: fmt.Sprintf("The task %q was already declared at %d:%d. Each task may appear only once.",
				d.ID, d.First.Start.Line, d.First.Start.Column),
			Subject: rangePtr(d.Again),
		})
	}
	return diags
}

func missingDiags(e *validator.MissingDependencyError) hcl.Diagnostics {
	var diags hcl.Diagnostics
	reported := make(map[string]bool)
	for _, ref := range e.References {
		reported[ref.Identifier] = true
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Undeclared dependency",
			Detail:   fmt.Sprintf("The task %q depends on %q, which is never declared.", ref.Target, ref.Identifier),
			Subject:  ref.Subject,
		})
	}
	for _, id := range e.Identifiers {
		if reported[id] {
			continue
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Undeclared dependency",
			Detail:   fmt.Sprintf("The identifier %q is used but never declared.", id),
		})
	}
	return diags
}

func rangePtr(r hcl.Range) *hcl.Range {
	return &r
}

// Write renders diags as text. src is the program the diagnostics refer to
// and is used for source snippets; width wraps detail text when non-zero.
func Write(w io.Writer, filename string, src []byte, diags hcl.Diagnostics, width uint, color bool) error {
	files := map[string]*hcl.File{
		filename: {Bytes: src},
	}
	return hcl.NewDiagnosticTextWriter(w, files, width, color).WriteDiagnostics(diags)
}
