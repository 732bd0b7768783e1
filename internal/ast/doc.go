// Package ast defines the abstract syntax tree of the flow notation.
//
// A program is a root Sequence. Every node is one of three variants
// (Atomic, Sequence, Parallel) and may be decorated with explicit
// dependencies (`#{a, b}`) and a terminal marker (`!`). The tree is built
// once by the syntax package and is not modified afterwards.
package ast
