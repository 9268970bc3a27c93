// Package digraph provides the dense-index adjacency-list graph store
// consumed by the toposort engine.
//
// A Graph holds a fixed number of vertices identified by contiguous
// indices 0..N-1. Each vertex stores its incoming and outgoing neighbor
// indices together with in-/out-degree counters. Edges are directed;
// parallel edges are stored as-is (no deduplication).
//
// Lifecycle:
//
//	build once (vertex count fixed at New, edges added incrementally)
//	→ optionally Transpose (reverse all edges in place, O(V))
//	→ hand to toposort.Sort exactly once (the sort consumes the graph)
//
// Consumption is a one-way door: the engine repurposes the degree
// counters as scratch state, so a consumed graph no longer upholds its
// degree invariants. Mutating a consumed graph panics; use Clone before
// sorting if you need to keep a usable copy.
//
// Construction:
//
//	New(n)                    // n vertices, no edges
//	FromAdjacency(adj)        // one out-edge list per vertex
//	FromItems(items, fn)      // callback-driven bulk build via Builder
//	g.AddEdge(from, to)       // incremental, O(1) amortized
//
// Contract violations - an out-of-range vertex index, a negative vertex
// count, or mutation after consumption - are programming errors and
// panic rather than returning an error; continuing would corrupt the
// adjacency invariants.
//
// Graph is not safe for concurrent use without external synchronization.
package digraph
