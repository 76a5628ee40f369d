// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating structural views (transpose, induced subgraph, clone).
//
// Views never mutate the input Graph and never alias its storage: every
// returned Graph is a fresh instance with copied adjacency buckets.

package digraph

// Transpose returns a new Graph with the same vertex set and every edge
// reversed: for each edge v→w in g, the result contains w→v.
//
// The input is not mutated. Applying Transpose twice yields a graph with the
// same vertex and edge sets as the original (the edge counter restarts from
// the distinct reversed edges, since views replay one AddEdge per edge).
//
// Returns ErrNilGraph if g is nil.
// Complexity: O(V + E).
func Transpose(g *Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithCapacityHint(len(g.adj)))
	for v := range g.adj {
		out.adj[v] = make(map[int64]struct{})
	}
	for v, bucket := range g.adj {
		for w := range bucket {
			out.adj[w][v] = struct{}{}
			out.edgeCount++
		}
	}

	return out, nil
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex
// ids: the result contains only vertices v where keep[v] is true, and all
// edges of g whose endpoints are both kept. Ids in keep that are not
// registered in g are ignored. The input graph is not mutated.
//
// Returns ErrNilGraph if g is nil.
// Complexity: O(K + E_K) over kept vertices and their out-edges, independent
// of the size of the rest of the graph.
func InducedSubgraph(g *Graph, keep map[int64]bool) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithCapacityHint(len(keep)))

	// Register kept vertices first so the edge pass sees complete membership.
	for v, ok := range keep {
		if !ok {
			continue
		}
		if _, exists := g.adj[v]; exists {
			out.adj[v] = make(map[int64]struct{})
		}
	}

	// Copy edges with both endpoints kept.
	for v := range out.adj {
		for w := range g.adj[v] {
			if _, kept := out.adj[w]; kept {
				out.adj[v][w] = struct{}{}
				out.edgeCount++
			}
		}
	}

	return out, nil
}

// Clone returns a deep copy of g: same vertex set, same adjacency, and the
// same edge-counter value. The copy shares no mutable state with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithCapacityHint(len(g.adj)))
	for v, bucket := range g.adj {
		cp := make(map[int64]struct{}, len(bucket))
		for w := range bucket {
			cp[w] = struct{}{}
		}
		out.adj[v] = cp
	}
	out.edgeCount = g.edgeCount

	return out
}
