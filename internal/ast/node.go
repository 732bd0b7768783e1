package ast

import "github.com/hashicorp/hcl/v2"

// Node is implemented by *Atomic, *Sequence and *Parallel only. Code that
// walks the tree switches on the concrete type and treats any other type
// as a programming error.
type Node interface {
	// Decor returns the dependency and terminal decoration of the node.
	Decor() *Decoration
	// SrcRange is the source span of the node itself. For composites it runs
	// from the opening to the closing bracket; decorations are not included.
	SrcRange() hcl.Range

	node()
}

// Ref is one identifier inside a `#{...}` dependency list.
type Ref struct {
	ID    string
	Range hcl.Range
}

// Decoration holds the optional suffixes that may follow any node.
type Decoration struct {
	// Deps lists explicit dependencies in source order, without repeats.
	Deps []Ref
	// Terminal is set when the node is followed by `!`.
	Terminal bool
}

// Decor implements Node.
func (d *Decoration) Decor() *Decoration { return d }

// DepIDs returns the dependency identifiers in source order.
func (d *Decoration) DepIDs() []string {
	if len(d.Deps) == 0 {
		return nil
	}
	ids := make([]string, len(d.Deps))
	for i, ref := range d.Deps {
		ids[i] = ref.ID
	}
	return ids
}

// Atomic is a single named task.
type Atomic struct {
	Decoration
	ID    string
	Range hcl.Range
}

// Sequence is an ordered composite; its children run one after another.
type Sequence struct {
	Decoration
	Children []Node
	Range    hcl.Range
}

// Parallel is an unordered composite; its children run concurrently. The
// order of Children is kept for formatting only.
type Parallel struct {
	Decoration
	Children []Node
	Range    hcl.Range
}

func (n *Atomic) SrcRange() hcl.Range   { return n.Range }
func (n *Sequence) SrcRange() hcl.Range { return n.Range }
func (n *Parallel) SrcRange() hcl.Range { return n.Range }

func (*Atomic) node()   {}
func (*Sequence) node() {}
func (*Parallel) node() {}

// Program is a parsed `$...$` document.
type Program struct {
	// Filename is used for source ranges and diagnostics.
	Filename string
	// Body is the top-level node list, treated as a sequence.
	Body *Sequence
}
