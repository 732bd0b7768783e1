// Package inmemorytopology provides a thread-safe, in-memory implementation
// of the topologystore.Store interface. Flow programs are small enough that
// the whole graph always fits in memory, so this is the only backend.
package inmemorytopology
