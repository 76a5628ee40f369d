// Package egonet extracts ego networks from a digraph.Graph.
//
// The ego network of a center vertex is the induced subgraph over the center,
// its direct out-neighbors, and every edge of the original graph whose both
// endpoints lie in that set, oriented as in the original.
//
// Policy: extraction is a read path, so an unregistered center is a normal
// outcome: Extract returns an empty graph, not an error. This is the
// deliberate counterpart to digraph.Graph.AddEdge's strict precondition.
//
// Complexity: O(d²) for center out-degree d (each neighbor's out-edges are
// checked against the d+1 member set), plus O(d log d) for deterministic
// neighbor iteration.
package egonet
