// Package engine wires the compilation pipeline together: parse the `$...$`
// program, build its dependency graph and validate it.
//
// Every stage fails fast. A caller receives either a validated graph or an
// error, never a partially checked graph. The engine keeps no state between
// calls, so independent programs may be compiled concurrently.
package engine
