// internal/nodeid/doc.go

/*
Package nodeid defines what a task identifier looks like in the flow
notation.

An identifier is a non-empty run of letters, digits and underscores, e.g.
`s0`, `fetch_user`, `Étape2`. Every other character is either a token of
the notation (`$ [ ] { } # ! ,`), whitespace, or invalid.

The lexer uses IsIdentRune to delimit identifiers and Parse is the single
place where a raw string is accepted as an identifier.
*/
package nodeid
