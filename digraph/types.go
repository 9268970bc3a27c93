// Package digraph declares the Graph and Vertex types and the sentinel
// errors shared with the sort engine.
package digraph

import "errors"

// ErrConsumed indicates that the graph was already handed to the sort
// engine. A consumed graph no longer upholds its degree invariants and
// must not be sorted again.
// Usage: if errors.Is(err, digraph.ErrConsumed) { /* clone before sorting */ }.
var ErrConsumed = errors.New("digraph: graph already consumed by sort")

// Vertex is one slot of the dense vertex table.
//
// In and Out list neighbor indices in insertion order; duplicates are
// permitted and represent parallel edges. InDeg and OutDeg mirror the
// list lengths while the graph is live, but become scratch state once
// the graph is consumed by the sort engine - which is why Consume hands
// out the live slice instead of a copy.
type Vertex struct {
	// InDeg counts incoming edges; the Kahn phase decrements it in place.
	InDeg int

	// OutDeg counts outgoing edges.
	OutDeg int

	// In holds the source index of every incoming edge, insertion-ordered.
	In []int

	// Out holds the target index of every outgoing edge, insertion-ordered.
	Out []int
}

// Graph is a directed graph over dense, contiguous vertex indices.
//
// The vertex count is fixed at construction; edges accumulate via
// AddEdge or the bulk builders. The zero value is a usable empty graph
// with zero vertices. Graph is not safe for concurrent use.
type Graph struct {
	verts    []Vertex
	edges    int
	consumed bool
}
