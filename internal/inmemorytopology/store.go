package inmemorytopology

import (
	"context"
	"errors"
	"sync"

	"github.com/specialistvlad/flowgraph/internal/graph"
	"github.com/specialistvlad/flowgraph/internal/topologystore"
)

type edgeKey struct {
	from, to string
}

// Store implements the topologystore.Store interface using maps and a mutex
// for thread-safe concurrent access.
type Store struct {
	mu    sync.RWMutex
	nodes map[string]graph.Node
	edges map[edgeKey]graph.Edge
}

var _ topologystore.Store = (*Store)(nil)

// New creates a new, empty in-memory topology store.
func New() *Store {
	return &Store{
		nodes: make(map[string]graph.Node),
		edges: make(map[edgeKey]graph.Edge),
	}
}

// AddNode adds a node to the store. Re-adding an ID is idempotent.
func (s *Store) AddNode(_ context.Context, n graph.Node) error {
	if n.ID == "" {
		return errors.New("inmemorytopology: node has an empty ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[n.ID]; exists {
		return nil
	}
	s.nodes[n.ID] = n
	return nil
}

// LookupNode retrieves a single node by its identifier.
func (s *Store) LookupNode(_ context.Context, id string) (graph.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	return n, ok
}

// AddEdge records an edge, merging it with an existing one on the same pair.
func (s *Store) AddEdge(_ context.Context, e graph.Edge) error {
	if e.From == "" || e.To == "" {
		return errors.New("inmemorytopology: edge has an empty endpoint")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := edgeKey{from: e.From, to: e.To}
	prev, exists := s.edges[key]
	if !exists {
		s.edges[key] = e
		return nil
	}
	if e.Kind == graph.Explicit {
		prev.Kind = graph.Explicit
	}
	if prev.Subject == nil {
		prev.Subject = e.Subject
	}
	s.edges[key] = prev
	return nil
}

// Nodes returns a snapshot of all nodes in the store.
func (s *Store) Nodes(_ context.Context) []graph.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]graph.Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// Edges returns a snapshot of all edges in the store.
func (s *Store) Edges(_ context.Context) []graph.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := make([]graph.Edge, 0, len(s.edges))
	for _, e := range s.edges {
		edges = append(edges, e)
	}
	return edges
}
