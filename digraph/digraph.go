package digraph

import "fmt"

// New creates a graph with n vertices (indices 0..n-1) and no edges.
// A negative n is a programming error and panics.
// Complexity: O(n).
func New(n int) *Graph {
	if n < 0 {
		panic(fmt.Sprintf("digraph: negative vertex count %d", n))
	}

	return &Graph{verts: make([]Vertex, n)}
}

// AddEdge appends a directed edge from→to: to joins from's out-list,
// from joins to's in-list, and both degree counters grow by one.
// Duplicate edges are stored verbatim (multi-edges); the sort engine
// traverses them multiple times, which is benign for correctness.
//
// Out-of-range indices and mutation after consumption are programming
// errors and panic.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) {
	g.mutable("AddEdge")
	g.checkVertex(from)
	g.checkVertex(to)

	g.verts[from].OutDeg++
	g.verts[to].InDeg++
	g.verts[from].Out = append(g.verts[from].Out, to)
	g.verts[to].In = append(g.verts[to].In, from)
	g.edges++
}

// Transpose reverses the direction of every edge in place by swapping
// each vertex's in/out lists and degree counters. The lists change
// owners, they are not copied, so applying Transpose twice restores the
// original edge structure.
// Complexity: O(V).
func (g *Graph) Transpose() {
	g.mutable("Transpose")

	var v *Vertex
	for i := range g.verts {
		v = &g.verts[i]
		v.InDeg, v.OutDeg = v.OutDeg, v.InDeg
		v.In, v.Out = v.Out, v.In
	}
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.verts) }

// EdgeCount returns the number of edges added so far. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// InDegree returns the number of incoming edges of v.
// An out-of-range v panics. Complexity: O(1).
func (g *Graph) InDegree(v int) int {
	g.checkVertex(v)

	return g.verts[v].InDeg
}

// OutDegree returns the number of outgoing edges of v.
// An out-of-range v panics. Complexity: O(1).
func (g *Graph) OutDegree(v int) int {
	g.checkVertex(v)

	return g.verts[v].OutDeg
}

// InEdges returns the source indices of v's incoming edges in insertion
// order. The slice is a live view; treat it as read-only.
func (g *Graph) InEdges(v int) []int {
	g.checkVertex(v)

	return g.verts[v].In
}

// OutEdges returns the target indices of v's outgoing edges in insertion
// order. The slice is a live view; treat it as read-only.
func (g *Graph) OutEdges(v int) []int {
	g.checkVertex(v)

	return g.verts[v].Out
}

// Consumed reports whether the graph was already handed to the sort
// engine. A consumed graph rejects all further mutation.
func (g *Graph) Consumed() bool { return g.consumed }

// Clone returns a deep copy of the graph with freshly allocated edge
// lists. Cloning is the escape hatch for callers that want to keep a
// usable graph across the consuming sort call.
// A consumed graph cannot be cloned (its counters are scratch) - panics.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mutable("Clone")

	clone := &Graph{verts: make([]Vertex, len(g.verts)), edges: g.edges}
	var src *Vertex
	for i := range g.verts {
		src = &g.verts[i]
		clone.verts[i] = Vertex{
			InDeg:  src.InDeg,
			OutDeg: src.OutDeg,
			In:     append([]int(nil), src.In...),
			Out:    append([]int(nil), src.Out...),
		}
	}

	return clone
}

// Consume marks the graph consumed and returns its live vertex table for
// destructive use by the sort engine. The second and later calls return
// ErrConsumed. Regular callers never need Consume; it exists so the
// engine can take ownership of the counters as scratch state.
func (g *Graph) Consume() ([]Vertex, error) {
	if g.consumed {
		return nil, ErrConsumed
	}
	g.consumed = true

	return g.verts, nil
}

// mutable panics if the graph was already consumed by the sort engine.
func (g *Graph) mutable(method string) {
	if g.consumed {
		panic("digraph: " + method + " on a graph already consumed by sort")
	}
}

// checkVertex panics if v is outside 0..VertexCount-1.
func (g *Graph) checkVertex(v int) {
	if v < 0 || v >= len(g.verts) {
		panic(fmt.Sprintf("digraph: vertex %d out of range [0,%d)", v, len(g.verts)))
	}
}
