// Package graph holds the DependencyGraph produced from a flow program: a
// set of task identifiers and a set of directed edges between them.
//
// A Graph is immutable once created by New. Nodes are kept sorted by
// identifier and edges lexicographically by (From, To), so that every
// consumer (validator, exporters, renderers) sees the same deterministic
// order without sorting again.
package graph
