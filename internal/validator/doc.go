// Package validator checks a constructed dependency graph before it is
// handed to a renderer.
//
// Two independent passes run to completion and their errors are combined
// with multierr:
//
//   - missing: every edge endpoint must be a declared node. All undeclared
//     identifiers are reported together, with every place they were
//     referenced.
//   - cycles: a three-colour depth-first search over every node. The first
//     cycle found is reported as a concrete path.
//
// Traversal order is sorted throughout, so the same graph always yields the
// same report.
package validator
