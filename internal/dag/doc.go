// Package dag is the graph constructor. It takes a parsed flow program and
// produces the graph.Graph of atomic tasks and the edges between them.
//
// Construction runs in passes over the AST, each logged through ctxlog:
//
//  1. declare: every atomic node becomes a graph node. Duplicate
//     declarations are collected and reported together.
//  2. link: a post-order reduction computes an (entry, exit) fragment for
//     every node. Sequences chain the exit set of one child to the entry
//     set of the next, parallel groups union their children, a terminal
//     node has an empty exit set, and `#{...}` dependencies add an edge
//     from each named identifier to every entry of the decorated node.
//
// Identifiers are not resolved here. A dependency on an undeclared name
// still becomes an edge, and the validator rejects it later.
package dag
