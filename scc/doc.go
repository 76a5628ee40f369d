// Package scc decomposes a digraph.Graph into its strongly connected
// components using Kosaraju's two-pass algorithm.
//
// A strongly connected component (SCC) is a maximal vertex set in which every
// pair of vertices is mutually reachable. Decompose partitions the whole
// vertex set: every vertex lands in exactly one component, and each component
// is materialized as the induced subgraph of the ORIGINAL graph over that
// vertex set (edges crossing component boundaries are excluded).
//
// Algorithm:
//
//  1. Pass 1 — run a depth-first search over every vertex of g, recording
//     each vertex on a finish stack only after all of its descendants have
//     finished (post-order). Seeding is deterministic: vertices in
//     descending id order.
//  2. Transpose — build the reverse graph via digraph.Transpose.
//  3. Pass 2 — run DFS over the transpose, starting roots in reverse finish
//     order from pass 1. Each root's reachable set (within the transpose,
//     minus already-visited vertices) is exactly one SCC.
//  4. Materialize each component via digraph.InducedSubgraph.
//
// Both passes use an explicit frame stack (vertex + neighbor cursor) instead
// of recursion, so arbitrarily long chains cannot exhaust the call stack
// while preserving exact post-order finish semantics.
//
// Complexity:
//
//   - Time:   O(V + E) per pass, O(V + E) overall (plus materialization).
//   - Memory: O(V + E) for the adjacency snapshots and the frame stack.
//
// Options:
//
//   - WithContext(ctx) allows cancellation between DFS steps.
//
// Errors:
//
//   - ErrNilGraph      if g is nil.
//   - context.Canceled / context.DeadlineExceeded if ctx is done.
package scc
