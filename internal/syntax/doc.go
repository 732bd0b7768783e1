// Package syntax turns flow notation text into an ast.Program.
//
// The grammar:
//
//	Program   := '$' NodeList '$'
//	NodeList  := Node (',' Node)*
//	Node      := (Atomic | Sequence | Parallel) Deps? Terminal?
//	Atomic    := Identifier
//	Sequence  := '[' NodeList ']'
//	Parallel  := '{' NodeList '}'
//	Deps      := '#{' IdentifierList '}'
//	Terminal  := '!'
//
// Whitespace between tokens is ignored. Lexing and parsing stop at the
// first error, which is returned as a *SyntaxError carrying the source
// range of the offending token. Nesting is only limited by a configurable
// depth cap (see WithMaxDepth).
//
// Identifiers are not resolved here: a dependency may name an identifier
// declared later in the program, or one that does not exist at all.
package syntax
