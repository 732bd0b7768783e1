package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrMissingDependency indicates a reference to an undeclared identifier.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrCircularDependency indicates the graph contains a directed cycle.
	ErrCircularDependency = errors.New("circular dependency")
)

// Reference is one use of an undeclared identifier.
type Reference struct {
	// Identifier is the undeclared name.
	Identifier string
	// Target is the node that was made to depend on it.
	Target string
	// Subject is where the reference appears, when known.
	Subject *hcl.Range
}

// MissingDependencyError lists every undeclared identifier in the graph.
// Wraps ErrMissingDependency.
type MissingDependencyError struct {
	// Identifiers is sorted and free of repeats.
	Identifiers []string
	// References is sorted by (Identifier, Target).
	References []Reference
}

func (e *MissingDependencyError) Error() string {
	if e == nil {
		return ""
	}
	quoted := make([]string, len(e.Identifiers))
	for i, id := range e.Identifiers {
		quoted[i] = fmt.Sprintf("%q", id)
	}
	return fmt.Sprintf("%s: undeclared identifier(s) %s", ErrMissingDependency, strings.Join(quoted, ", "))
}

func (e *MissingDependencyError) Unwrap() error { return ErrMissingDependency }

// CircularDependencyError reports one cycle. Cycle starts and ends with the
// same identifier and each consecutive pair is an edge of the graph.
// Wraps ErrCircularDependency.
type CircularDependencyError struct {
	Cycle []string
}

func (e *CircularDependencyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", ErrCircularDependency, strings.Join(e.Cycle, " -> "))
}

func (e *CircularDependencyError) Unwrap() error { return ErrCircularDependency }
