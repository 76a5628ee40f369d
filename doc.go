// Package socgraph is an in-memory toolkit for analyzing directed graphs
// built from pairwise "from → to" relationships, such as social-network
// edge lists.
//
// What is socgraph?
//
//	A small, deterministic library that brings together:
//		• Core primitives: an integer-keyed directed graph with strict edge
//		  preconditions and snapshot exports (digraph)
//		• Structural views: transpose and induced subgraphs (digraph)
//		• Ego networks: the induced subgraph of a vertex, its out-neighbors,
//		  and the edges among them (egonet)
//		• Strongly connected components: full Kosaraju two-pass decomposition
//		  with iterative, stack-safe DFS (scc)
//		• Edge-list I/O: whitespace-separated "from to" readers and writers
//		  (edgelist)
//
// Under the hood, everything is organized under four subpackages:
//
//	digraph/  — the Graph type, transpose and induced-subgraph views
//	egonet/   — ego-network extraction
//	scc/      — Kosaraju strongly-connected-component decomposition
//	edgelist/ — edge-list loading and serialization
//
// A command-line front end lives in cmd/socgraph: it loads an edge list and
// prints vertex/edge counts, adjacency, ego networks, or the SCC partition.
//
// Quick ASCII example:
//
//	1 ──▶ 2
//	▲     │
//	└─ 3 ◀┘──▶ 4
//
//	edges 1→2, 2→3, 3→1, 3→4 decompose into the SCCs {1,2,3} and {4}.
//
//	go get github.com/mkarulin/socgraph
package socgraph
