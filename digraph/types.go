// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, capability interface, sentinel errors, constructor options.
//
// Error policy (builder-style, strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); never compare strings.
//   - Methods attach context (the offending vertex id) via %w wrapping.

package digraph

import (
	"errors"
	"sync"
)

// Sentinel errors for digraph operations.
var (
	// ErrVertexNotFound indicates an operation referenced an unregistered vertex.
	// AddEdge returns it wrapped with the offending endpoint id.
	ErrVertexNotFound = errors.New("digraph: vertex not found")

	// ErrNilGraph indicates a nil *Graph was passed to a package-level view
	// function such as Transpose or InducedSubgraph.
	ErrNilGraph = errors.New("digraph: graph is nil")
)

// Digraph is the capability surface of a mutable directed graph.
// *Graph is its only implementation; the interface exists so collaborators
// (loaders, printers) can be written against behavior rather than storage.
type Digraph interface {
	// AddVertex registers id if absent; adding an existing vertex is a no-op.
	AddVertex(id int64)

	// AddEdge inserts the directed edge from→to. Both endpoints must already
	// be registered, otherwise ErrVertexNotFound is returned and the graph is
	// left untouched.
	AddEdge(from, to int64) error

	// HasVertex reports whether id is registered.
	HasVertex(id int64) bool

	// VertexCount returns the number of registered vertices.
	VertexCount() int

	// EdgeCount returns the number of successful AddEdge calls (see doc.go).
	EdgeCount() int64

	// Vertices returns all vertex ids in ascending order.
	Vertices() []int64

	// OutNeighbors returns a sorted copy of id's outgoing-edge targets.
	OutNeighbors(id int64) ([]int64, error)

	// AdjacencyMap returns an independent snapshot of the full adjacency.
	AdjacencyMap() map[int64]map[int64]struct{}
}

// compile-time conformance check
var _ Digraph = (*Graph)(nil)

// Option configures a Graph at construction time.
type Option func(*config)

// config aggregates construction knobs; passed by value, immutable afterwards.
type config struct {
	capacityHint int // expected vertex count; 0 means unknown
}

// WithCapacityHint pre-sizes internal maps for n expected vertices.
// Hints below zero are ignored. Purely a performance knob; semantics are
// identical with or without it.
func WithCapacityHint(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacityHint = n
		}
	}
}

// Graph is the core in-memory directed-graph structure.
//
// adj maps each registered vertex id to its outgoing-edge set. Every
// registered vertex owns a (possibly empty) bucket, so len(adj) is the vertex
// count. edgeCount advances on every successful AddEdge call.
type Graph struct {
	mu sync.RWMutex

	adj       map[int64]map[int64]struct{} // vertex id → outgoing-edge set
	edgeCount int64                        // AddEdge call counter
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1).
func NewGraph(opts ...Option) *Graph {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{adj: make(map[int64]map[int64]struct{}, cfg.capacityHint)}
}
