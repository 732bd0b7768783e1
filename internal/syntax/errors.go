package syntax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrSyntax indicates text that does not match the grammar.
	ErrSyntax = errors.New("syntax error")

	// ErrDepthLimit indicates nesting deeper than the configured maximum.
	ErrDepthLimit = errors.New("nesting depth limit exceeded")
)

// SyntaxError reports the first grammar violation in the input.
// Wraps ErrSyntax for errors.Is() compatibility.
type SyntaxError struct {
	// Subject is the range of the offending token or character.
	Subject hcl.Range
	// Expected lists what the grammar allows at this point.
	Expected []string
	// Found describes what was there instead.
	Found string
}

// Offset is the byte offset of the error in the input.
func (e *SyntaxError) Offset() int {
	return e.Subject.Start.Byte
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s (offset %d)", ErrSyntax, position(e.Subject), e.Offset())
	if len(e.Expected) > 0 {
		fmt.Fprintf(&sb, ": expected %s", alternatives(e.Expected))
		if e.Found != "" {
			fmt.Fprintf(&sb, ", found %s", e.Found)
		}
	} else if e.Found != "" {
		fmt.Fprintf(&sb, ": unexpected %s", e.Found)
	}
	return sb.String()
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// DepthLimitError is returned when a program nests composites deeper than
// the parser's limit. Wraps ErrDepthLimit.
type DepthLimitError struct {
	Limit   int
	Subject hcl.Range
}

func (e *DepthLimitError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s at %s: more than %d nested nodes", ErrDepthLimit, position(e.Subject), e.Limit)
}

func (e *DepthLimitError) Unwrap() error { return ErrDepthLimit }

func position(r hcl.Range) string {
	if r.Filename == "" {
		return fmt.Sprintf("%d:%d", r.Start.Line, r.Start.Column)
	}
	return fmt.Sprintf("%s:%d:%d", r.Filename, r.Start.Line, r.Start.Column)
}

// alternatives joins items as "a", "a or b", "a, b or c".
func alternatives(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
