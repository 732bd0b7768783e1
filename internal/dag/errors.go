package dag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// ErrDuplicateIdentifier indicates an identifier declared as more than one
// atomic node.
var ErrDuplicateIdentifier = errors.New("duplicate identifier")

// Duplicate is one repeated declaration.
type Duplicate struct {
	ID string
	// First is the earliest declaration of ID.
	First hcl.Range
	// Again is the later, rejected declaration.
	Again hcl.Range
}

// DuplicateIdentifierError lists every repeated declaration in a program,
// in source order. Wraps ErrDuplicateIdentifier.
type DuplicateIdentifierError struct {
	Duplicates []Duplicate
}

func (e *DuplicateIdentifierError) Error() string {
	if e == nil || len(e.Duplicates) == 0 {
		return ErrDuplicateIdentifier.Error()
	}
	parts := make([]string, len(e.Duplicates))
	for i, d := range e.Duplicates {
		parts[i] = fmt.Sprintf("%q at %s (first declared at %s)", d.ID, short(d.Again), short(d.First))
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateIdentifier, strings.Join(parts, "; "))
}

func (e *DuplicateIdentifierError) Unwrap() error { return ErrDuplicateIdentifier }

func short(r hcl.Range) string {
	if r.Filename == "" {
		return fmt.Sprintf("%d:%d", r.Start.Line, r.Start.Column)
	}
	return fmt.Sprintf("%s:%d:%d", r.Filename, r.Start.Line, r.Start.Column)
}
