package digraph

// Builder is an edge builder bound to one vertex index during a bulk
// FromItems construction. It lets the per-item callback add edges
// relative to "its" vertex without tracking indices by hand.
//
// Builder is a cheap value; copying it is fine.
type Builder struct {
	graph *Graph
	index int
}

// Index returns the vertex index this builder is bound to.
func (b Builder) Index() int { return b.index }

// Graph returns the graph under construction, for callers that need to
// add edges between two foreign vertices from inside the callback.
func (b Builder) Graph() *Graph { return b.graph }

// AddOutEdge adds an edge from the bound vertex to the given index.
// Duplicate edges are not detected.
func (b Builder) AddOutEdge(to int) { b.graph.AddEdge(b.index, to) }

// AddInEdge adds an edge from the given index to the bound vertex.
// Duplicate edges are not detected.
func (b Builder) AddInEdge(from int) { b.graph.AddEdge(from, b.index) }

// FromItems builds a graph with one vertex per item in a single pass.
// For every item, fn receives a Builder bound to that item's index and
// the item itself; fn declares the item's edges through the builder.
// This is the bulk-construction mechanism the keyed adapter builds upon.
// Complexity: O(len(items) + E).
func FromItems[T any](items []T, fn func(Builder, T)) *Graph {
	g := New(len(items))
	for idx, item := range items {
		fn(Builder{graph: g, index: idx}, item)
	}

	return g
}

// FromAdjacency builds a graph from one out-edge list per vertex:
// adj[u] lists the targets of u's outgoing edges. Targets must be valid
// indices (< len(adj)); violations panic as in AddEdge.
// Complexity: O(V + E).
func FromAdjacency(adj [][]int) *Graph {
	return FromItems(adj, func(b Builder, targets []int) {
		for _, to := range targets {
			b.AddOutEdge(to)
		}
	})
}
