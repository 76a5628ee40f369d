package scc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarulin/socgraph/digraph"
	"github.com/mkarulin/socgraph/scc"
)

// buildGraph constructs a graph over the given vertices and edges,
// failing the test on any invalid edge.
func buildGraph(t *testing.T, vertices []int64, edges [][2]int64) *digraph.Graph {
	t.Helper()
	g := digraph.NewGraph(digraph.WithCapacityHint(len(vertices)))
	for _, v := range vertices {
		g.AddVertex(v)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// componentSets extracts the sorted vertex set of every component.
func componentSets(res *scc.Result) [][]int64 {
	sets := make([][]int64, 0, len(res.Components))
	for _, c := range res.Components {
		sets = append(sets, c.Vertices())
	}

	return sets
}

func TestDecompose_NilGraph(t *testing.T) {
	res, err := scc.Decompose(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, scc.ErrNilGraph)
}

func TestDecompose_EmptyGraph(t *testing.T) {
	res, err := scc.Decompose(digraph.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, res.Components)
	assert.NotNil(t, res.ComponentOf)
	assert.Empty(t, res.ComponentOf)
}

func TestDecompose_SingleVertex(t *testing.T) {
	g := buildGraph(t, []int64{7}, nil)

	res, err := scc.Decompose(g)
	require.NoError(t, err)
	require.Len(t, res.Components, 1)
	assert.Equal(t, []int64{7}, res.Components[0].Vertices())
	assert.Equal(t, 0, res.ComponentOf[7])
}

func TestDecompose_SelfLoop(t *testing.T) {
	g := buildGraph(t, []int64{5}, [][2]int64{{5, 5}})

	res, err := scc.Decompose(g)
	require.NoError(t, err)
	require.Len(t, res.Components, 1)

	// The loop edge is internal to the component and must survive.
	nbs, err := res.Components[0].OutNeighbors(5)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, nbs)
}

// A 3-cycle with a dangling tail: 1→2, 2→3, 3→1, 3→4 yields exactly the
// components {1,2,3} and {4}, with the boundary edge 3→4 excluded from both.
func TestDecompose_CycleWithTail(t *testing.T) {
	g := buildGraph(t, []int64{1, 2, 3, 4},
		[][2]int64{{1, 2}, {2, 3}, {3, 1}, {3, 4}})

	res, err := scc.Decompose(g)
	require.NoError(t, err)
	require.Len(t, res.Components, 2)
	assert.ElementsMatch(t, [][]int64{{1, 2, 3}, {4}}, componentSets(res))

	// ComponentOf must agree with the subgraphs.
	assert.Equal(t, res.ComponentOf[1], res.ComponentOf[2])
	assert.Equal(t, res.ComponentOf[2], res.ComponentOf[3])
	assert.NotEqual(t, res.ComponentOf[3], res.ComponentOf[4])

	// The cycle's internal edges survive; 3→4 is excluded.
	cyc := res.Components[res.ComponentOf[3]]
	nbs, err := cyc.OutNeighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, nbs)
}

func TestDecompose_TwoLinkedCycles(t *testing.T) {
	g := buildGraph(t, []int64{1, 2, 3, 4},
		[][2]int64{{1, 2}, {2, 1}, {3, 4}, {4, 3}, {2, 3}})

	res, err := scc.Decompose(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int64{{1, 2}, {3, 4}}, componentSets(res))
}

func TestDecompose_ChainIsAllSingletons(t *testing.T) {
	g := buildGraph(t, []int64{1, 2, 3, 4},
		[][2]int64{{1, 2}, {2, 3}, {3, 4}})

	res, err := scc.Decompose(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int64{{1}, {2}, {3}, {4}}, componentSets(res))

	// Every chain edge crosses a boundary, so no component has edges.
	for _, c := range res.Components {
		for _, v := range c.Vertices() {
			nbs, err := c.OutNeighbors(v)
			require.NoError(t, err)
			assert.Empty(t, nbs)
		}
	}
}

// The components must partition the vertex set: pairwise disjoint, union
// equal to the full set.
func TestDecompose_PartitionProperty(t *testing.T) {
	g := buildGraph(t, []int64{1, 2, 3, 4, 5, 6, 7, 8},
		[][2]int64{
			{1, 2}, {2, 3}, {3, 1}, // cycle A
			{4, 5}, {5, 4}, // cycle B
			{3, 4}, {5, 6}, // bridges
			{7, 8}, // chain + isolated-ish tail
		})

	res, err := scc.Decompose(g)
	require.NoError(t, err)

	seen := make(map[int64]int)
	for _, c := range res.Components {
		for _, v := range c.Vertices() {
			seen[v]++
		}
	}
	for _, v := range g.Vertices() {
		assert.Equalf(t, 1, seen[v], "vertex %d must appear in exactly one component", v)
	}
	assert.Len(t, seen, g.VertexCount())
	assert.Len(t, res.ComponentOf, g.VertexCount())
}

// Component subgraphs are snapshots of the original: mutating one must not
// leak back.
func TestDecompose_SubgraphsAreIndependent(t *testing.T) {
	g := buildGraph(t, []int64{1, 2}, [][2]int64{{1, 2}, {2, 1}})

	res, err := scc.Decompose(g)
	require.NoError(t, err)
	require.Len(t, res.Components, 1)

	res.Components[0].AddVertex(99)
	assert.False(t, g.HasVertex(99))
}

func TestDecompose_Cancelled(t *testing.T) {
	g := buildGraph(t, []int64{1, 2}, [][2]int64{{1, 2}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := scc.Decompose(g, scc.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

// Deterministic discovery order: with descending pass-1 seeding, the cycle
// component is reported before the tail on the spec scenario.
func TestDecompose_DeterministicOrder(t *testing.T) {
	g := buildGraph(t, []int64{1, 2, 3, 4},
		[][2]int64{{1, 2}, {2, 3}, {3, 1}, {3, 4}})

	for i := 0; i < 5; i++ {
		res, err := scc.Decompose(g)
		require.NoError(t, err)
		require.Len(t, res.Components, 2)
		assert.Equal(t, []int64{1, 2, 3}, res.Components[0].Vertices())
		assert.Equal(t, []int64{4}, res.Components[1].Vertices())
	}
}
