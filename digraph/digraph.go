// SPDX-License-Identifier: MIT
//
// File: digraph.go
// Role: Vertex/edge lifecycle and the read-only query surface.
//
// Determinism:
//   - Vertices() and OutNeighbors() return ids sorted ascending; higher-level
//     algorithms rely on this for reproducible traversal seeds.
//
// Concurrency:
//   - All methods take g.mu; mutators write-lock, queries read-lock.

package digraph

import (
	"fmt"
	"sort"
)

// AddVertex registers a vertex if absent (idempotent).
//
// Adding an existing vertex is a no-op: the adjacency set and vertex count
// are unchanged. A fresh vertex starts with an empty outgoing-edge bucket so
// edge methods can rely on the bucket invariant.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adj[id]; exists {
		return // no-op for existing vertex
	}
	g.adj[id] = make(map[int64]struct{})
}

// AddEdge inserts the directed edge from→to.
//
// Both endpoints must already be registered via AddVertex; otherwise
// ErrVertexNotFound is returned (wrapped with the offending id) and no state
// changes. Self-loops are permitted. A duplicate edge collapses into the
// existing adjacency set, but the edge counter still advances: EdgeCount is
// a call counter, not a distinct-edge counter.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Validate both endpoints before touching anything, so a failed call
	// never partially mutates the graph.
	bucket, ok := g.adj[from]
	if !ok {
		return fmt.Errorf("digraph: AddEdge(%d→%d): from %d: %w", from, to, from, ErrVertexNotFound)
	}
	if _, ok = g.adj[to]; !ok {
		return fmt.Errorf("digraph: AddEdge(%d→%d): to %d: %w", from, to, to, ErrVertexNotFound)
	}

	bucket[to] = struct{}{}
	g.edgeCount++

	return nil
}

// HasVertex reports whether id is registered.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of successful AddEdge calls.
//
// Note: this deliberately counts calls, not distinct edges. Re-adding an
// existing edge leaves the adjacency untouched yet still advances the
// counter, matching the accounting of the edge-list datasets this library
// was written for. Use AdjacencyMap to count distinct edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Vertices returns all vertex ids in ascending order.
//
// The stable enumeration is the seed surface for deterministic traversals;
// rely on it for reproducible outputs.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int64, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// OutNeighbors returns a sorted, independent copy of id's outgoing-edge
// targets. Returns ErrVertexNotFound if id is not registered.
// Complexity: O(d log d) for out-degree d.
func (g *Graph) OutNeighbors(id int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("digraph: OutNeighbors(%d): %w", id, ErrVertexNotFound)
	}

	out := make([]int64, 0, len(bucket))
	for to := range bucket {
		out = append(out, to)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// AdjacencyMap returns an independent snapshot mapping every vertex id to a
// copy of its outgoing-edge set. Mutating the result never affects the graph.
// Complexity: O(V + E).
func (g *Graph) AdjacencyMap() map[int64]map[int64]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int64]map[int64]struct{}, len(g.adj))
	for id, bucket := range g.adj {
		cp := make(map[int64]struct{}, len(bucket))
		for to := range bucket {
			cp[to] = struct{}{}
		}
		out[id] = cp
	}

	return out
}
