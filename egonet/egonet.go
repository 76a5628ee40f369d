package egonet

import (
	"errors"
	"fmt"

	"github.com/mkarulin/socgraph/digraph"
)

// ErrNilGraph is returned when a nil *digraph.Graph is passed to Extract.
var ErrNilGraph = errors.New("egonet: graph is nil")

// Extract builds the ego network of center within g.
//
// If center is not registered in g, Extract returns a fresh empty graph and a
// nil error (lenient read-path policy). Otherwise the result contains center,
// every out-neighbor n of center with the edge center→n, and every edge n→e
// between members of that set. The result is an independent snapshot; it
// shares no mutable state with g.
//
// Returns ErrNilGraph only if g is nil.
func Extract(g *digraph.Graph, center int64) (*digraph.Graph, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Lenient policy: absent center yields an empty graph.
	if !g.HasVertex(center) {
		return digraph.NewGraph(), nil
	}

	neighbors, err := g.OutNeighbors(center)
	if err != nil {
		return nil, fmt.Errorf("egonet: OutNeighbors(%d): %w", center, err)
	}

	// 3. First pass: center, its neighbors, and the center→n spokes.
	net := digraph.NewGraph(digraph.WithCapacityHint(len(neighbors) + 1))
	net.AddVertex(center)
	for _, n := range neighbors {
		net.AddVertex(n)
		if err = net.AddEdge(center, n); err != nil {
			return nil, fmt.Errorf("egonet: add spoke %d→%d: %w", center, n, err)
		}
	}

	// 4. Second pass: edges among members. For each neighbor n, keep the
	//    out-edges n→e whose target e is already part of the net (e is the
	//    center or another neighbor).
	for _, n := range neighbors {
		targets, err := g.OutNeighbors(n)
		if err != nil {
			return nil, fmt.Errorf("egonet: OutNeighbors(%d): %w", n, err)
		}
		for _, e := range targets {
			if !net.HasVertex(e) {
				continue
			}
			if err = net.AddEdge(n, e); err != nil {
				return nil, fmt.Errorf("egonet: add edge %d→%d: %w", n, e, err)
			}
		}
	}

	return net, nil
}
