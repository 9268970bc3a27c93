package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/toposcc/digraph"
)

// TestNew_Empty verifies that New(0) yields a usable zero-vertex graph.
func TestNew_Empty(t *testing.T) {
	g := digraph.New(0)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.Consumed())
}

// TestNew_NegativePanics ensures a negative vertex count is rejected as
// a programming error.
func TestNew_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { digraph.New(-1) })
}

// TestAddEdge_DegreesAndLists checks that both adjacency directions and
// both degree counters track every insertion.
func TestAddEdge_DegreesAndLists(t *testing.T) {
	g := digraph.New(3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(2, 1)

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.OutDegree(0))
	assert.Equal(t, 0, g.InDegree(0))
	assert.Equal(t, 2, g.InDegree(1))
	assert.Equal(t, 0, g.OutDegree(1))
	assert.Equal(t, []int{1, 2}, g.OutEdges(0))
	assert.Equal(t, []int{0, 2}, g.InEdges(1))
	assert.Empty(t, g.OutEdges(1))
}

// TestAddEdge_OutOfRangePanics ensures invalid endpoints abort instead
// of corrupting the adjacency invariants.
func TestAddEdge_OutOfRangePanics(t *testing.T) {
	g := digraph.New(2)
	assert.Panics(t, func() { g.AddEdge(2, 0) })
	assert.Panics(t, func() { g.AddEdge(0, 2) })
	assert.Panics(t, func() { g.AddEdge(-1, 0) })
	// nothing was recorded by the failed calls
	assert.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_MultiEdgesStored verifies parallel edges are kept verbatim
// and counted in degrees.
func TestAddEdge_MultiEdgesStored(t *testing.T) {
	g := digraph.New(2)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{1, 1}, g.OutEdges(0))
	assert.Equal(t, 2, g.InDegree(1))
}

// TestAddEdge_SelfLoop verifies a self-loop lands in both lists of the
// same vertex.
func TestAddEdge_SelfLoop(t *testing.T) {
	g := digraph.New(1)
	g.AddEdge(0, 0)

	assert.Equal(t, []int{0}, g.OutEdges(0))
	assert.Equal(t, []int{0}, g.InEdges(0))
	assert.Equal(t, 1, g.InDegree(0))
	assert.Equal(t, 1, g.OutDegree(0))
}

// TestTranspose_SwapsDirections checks a single application reverses
// every edge.
func TestTranspose_SwapsDirections(t *testing.T) {
	g := digraph.New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	g.Transpose()

	assert.Equal(t, []int{2}, g.InEdges(1)) // edge 1→2 reversed into 2→1
	assert.Equal(t, []int{0}, g.OutEdges(1))
	assert.Equal(t, 1, g.OutDegree(1))
	assert.Equal(t, 1, g.InDegree(1))
	assert.Equal(t, []int{1}, g.InEdges(0))
	assert.Equal(t, 0, g.OutDegree(0))
}

// TestTranspose_RoundTrip verifies the round-trip law: transposing twice
// restores the exact in/out structure, degrees included.
func TestTranspose_RoundTrip(t *testing.T) {
	g := digraph.FromAdjacency([][]int{{3}, {3, 4}, {4, 7}, {5, 6, 7}, {6}, {}, {}, {}})
	want := g.Clone()

	g.Transpose()
	g.Transpose()

	for v := 0; v < g.VertexCount(); v++ {
		assert.Equal(t, want.InEdges(v), g.InEdges(v), "in-edges of %d", v)
		assert.Equal(t, want.OutEdges(v), g.OutEdges(v), "out-edges of %d", v)
		assert.Equal(t, want.InDegree(v), g.InDegree(v), "in-degree of %d", v)
		assert.Equal(t, want.OutDegree(v), g.OutDegree(v), "out-degree of %d", v)
	}
}

// TestFromAdjacency builds the 8-vertex reference graph and spot-checks
// its shape.
func TestFromAdjacency(t *testing.T) {
	g := digraph.FromAdjacency([][]int{{3}, {3, 4}, {4, 7}, {5, 6, 7}, {6}, {}, {}, {}})

	require.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 9, g.EdgeCount())
	assert.Equal(t, []int{5, 6, 7}, g.OutEdges(3))
	assert.Equal(t, []int{0, 1}, g.InEdges(3))
	assert.Equal(t, 2, g.InDegree(7))
}

// TestFromItems_Builder exercises the callback-driven bulk build,
// including AddInEdge and the bound index.
func TestFromItems_Builder(t *testing.T) {
	type pkg struct {
		deps []int
	}
	items := []pkg{{deps: nil}, {deps: []int{0}}, {deps: []int{0, 1}}}

	g := digraph.FromItems(items, func(b digraph.Builder, p pkg) {
		for _, d := range p.deps {
			// dependency edge: dep → dependent
			b.AddInEdge(d)
		}
	})

	require.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []int{1, 2}, g.OutEdges(0))
	assert.Equal(t, []int{0, 1}, g.InEdges(2))
}

// TestFromItems_IndexAndGraph verifies the builder exposes its bound
// index and the graph under construction.
func TestFromItems_IndexAndGraph(t *testing.T) {
	var indices []int
	g := digraph.FromItems(make([]struct{}, 3), func(b digraph.Builder, _ struct{}) {
		indices = append(indices, b.Index())
		assert.Equal(t, 3, b.Graph().VertexCount())
	})

	assert.Equal(t, []int{0, 1, 2}, indices)
	assert.Equal(t, 0, g.EdgeCount())
}

// TestClone_Independent ensures mutations of a clone never leak into the
// original.
func TestClone_Independent(t *testing.T) {
	g := digraph.New(2)
	g.AddEdge(0, 1)

	clone := g.Clone()
	clone.AddEdge(1, 0)

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, clone.EdgeCount())
	assert.Empty(t, g.OutEdges(1))
	assert.Equal(t, []int{0}, clone.OutEdges(1))
}

// TestConsume_Guard covers the one-way consumption door: the first
// Consume succeeds, the second reports ErrConsumed, and any further
// mutation panics.
func TestConsume_Guard(t *testing.T) {
	g := digraph.New(2)
	g.AddEdge(0, 1)

	verts, err := g.Consume()
	require.NoError(t, err)
	require.Len(t, verts, 2)
	assert.True(t, g.Consumed())

	_, err = g.Consume()
	assert.ErrorIs(t, err, digraph.ErrConsumed)

	assert.Panics(t, func() { g.AddEdge(1, 0) })
	assert.Panics(t, func() { g.Transpose() })
	assert.Panics(t, func() { g.Clone() })
}

// TestConsume_LiveView verifies Consume hands out the live vertex table,
// not a copy - the engine's destructive scratch reuse depends on it.
func TestConsume_LiveView(t *testing.T) {
	g := digraph.New(2)
	g.AddEdge(0, 1)

	verts, err := g.Consume()
	require.NoError(t, err)

	assert.Equal(t, 1, verts[1].InDeg)
	assert.Equal(t, []int{1}, verts[0].Out)
}
