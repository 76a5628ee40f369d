package scc

import (
	"fmt"

	"github.com/mkarulin/socgraph/digraph"
)

// frame is one explicit-stack DFS frame: a vertex plus a cursor into its
// neighbor list. The cursor is what lets the iterative walk reproduce the
// exact post-order of the recursive formulation.
type frame struct {
	v    int64 // vertex under exploration
	next int   // index of the next neighbor to consider
}

// walker encapsulates state for one DFS pass.
type walker struct {
	opts    options           // cancellation
	nbs     map[int64][]int64 // sorted adjacency snapshot of the pass's graph
	visited map[int64]bool    // vertices already discovered in this pass
	finish  []int64           // post-order finish stack (grows as vertices finish)
}

// Decompose partitions g into strongly connected components via Kosaraju's
// two-pass algorithm and materializes each component as an induced subgraph
// of g. See the package documentation for the algorithm outline.
//
// On an empty graph the result has zero components. Returns ErrNilGraph if g
// is nil, or the context error if the traversal is cancelled.
func Decompose(g *digraph.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Apply options.
	dopts := defaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Pass 1: post-order finish discovery over g.
	//    Seeds run in descending id order. Any consistent order yields a
	//    correct partition; this one is pinned for reproducible output.
	verts := g.Vertices()
	w1 := &walker{
		opts:    dopts,
		nbs:     sortedAdjacency(g),
		visited: make(map[int64]bool, len(verts)),
		finish:  make([]int64, 0, len(verts)),
	}
	for i := len(verts) - 1; i >= 0; i-- {
		if w1.visited[verts[i]] {
			continue
		}
		if err := w1.visit(verts[i], nil); err != nil {
			return nil, err
		}
	}

	// 4. Transpose g.
	tr, err := digraph.Transpose(g)
	if err != nil {
		return nil, fmt.Errorf("scc: transpose: %w", err)
	}

	// 5. Pass 2: component extraction over the transpose, roots in reverse
	//    finish order. Each root collects exactly one SCC.
	w2 := &walker{
		opts:    dopts,
		nbs:     sortedAdjacency(tr),
		visited: make(map[int64]bool, len(verts)),
	}
	res := &Result{
		Components:  make([]*digraph.Graph, 0),
		ComponentOf: make(map[int64]int, len(verts)),
	}
	for i := len(w1.finish) - 1; i >= 0; i-- {
		root := w1.finish[i]
		if w2.visited[root] {
			continue
		}
		var comp []int64
		if err = w2.visit(root, &comp); err != nil {
			return nil, err
		}

		// 6. Materialize the component as an induced subgraph of the
		//    ORIGINAL graph, so internal edges keep their orientation and
		//    cross-component edges are excluded.
		keep := make(map[int64]bool, len(comp))
		idx := len(res.Components)
		for _, v := range comp {
			keep[v] = true
			res.ComponentOf[v] = idx
		}
		sub, err := digraph.InducedSubgraph(g, keep)
		if err != nil {
			return nil, fmt.Errorf("scc: induced subgraph: %w", err)
		}
		res.Components = append(res.Components, sub)
	}

	return res, nil
}

// visit runs one iterative DFS tree rooted at root, honoring cancellation.
// Vertices are appended to w.finish in post-order (all descendants first).
// If collect is non-nil, every discovered vertex is appended to it in
// discovery order.
func (w *walker) visit(root int64, collect *[]int64) error {
	w.visited[root] = true
	if collect != nil {
		*collect = append(*collect, root)
	}
	stack := []frame{{v: root}}

	for len(stack) > 0 {
		// Cancellation check once per step.
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		adj := w.nbs[top.v]
		if top.next < len(adj) {
			n := adj[top.next]
			top.next++
			if w.visited[n] {
				continue
			}
			w.visited[n] = true
			if collect != nil {
				*collect = append(*collect, n)
			}
			stack = append(stack, frame{v: n})
			continue
		}

		// All descendants finished: record post-order and pop.
		w.finish = append(w.finish, top.v)
		stack = stack[:len(stack)-1]
	}

	return nil
}

// sortedAdjacency snapshots g's adjacency into sorted neighbor slices.
// The snapshot decouples the traversal from the live graph and makes
// neighbor iteration deterministic.
// Complexity: O(V + E log E).
func sortedAdjacency(g *digraph.Graph) map[int64][]int64 {
	verts := g.Vertices()
	out := make(map[int64][]int64, len(verts))
	for _, v := range verts {
		nbs, err := g.OutNeighbors(v)
		if err != nil {
			// Vertices() and OutNeighbors() read the same catalog; a miss
			// here is a broken invariant, not a recoverable condition.
			panic(fmt.Sprintf("scc: vertex %d vanished during snapshot: %v", v, err))
		}
		out[v] = nbs
	}

	return out
}
