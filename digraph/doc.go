// Package digraph defines the central directed-graph type used by every
// socgraph analysis, together with its non-mutating structural views.
//
// The Graph maps each int64 vertex id to the set of ids it points to.
// Vertex insertion is idempotent; edge insertion is strict and fails with
// ErrVertexNotFound when either endpoint has not been registered first.
// Self-loops are permitted, duplicate edges collapse into the adjacency set.
//
// Two policies are worth knowing up front:
//
//   - EdgeCount counts AddEdge calls, not distinct edges. Inserting the same
//     edge twice leaves the adjacency unchanged but still advances the
//     counter. This matches the historical accounting of the edge-list data
//     this package was built for; see EdgeCount for details.
//
//   - Exports are snapshots. AdjacencyMap, OutNeighbors, Clone, Transpose and
//     InducedSubgraph all return freshly allocated state; callers can retain
//     and mutate the results without corrupting the source graph.
//
// All methods are safe for concurrent use via an internal RWMutex, though the
// intended usage is single-owner: build, then query.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasVertex, VertexCount, EdgeCount: O(1)
//   - Vertices: O(V log V)   (sorted, deterministic enumeration)
//   - OutNeighbors: O(d log d) for out-degree d
//   - AdjacencyMap, Clone, Transpose: O(V + E)
//   - InducedSubgraph: O(K + E_K) over the kept vertices and their out-edges
package digraph
