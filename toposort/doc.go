// Package toposort implements the combined sort/SCC engine over a
// digraph.Graph: Kahn's algorithm for topological sorting with a
// fallback to Kosaraju's algorithm for strongly connected components
// when the graph turns out to be cyclic.
//
// The single entry point is Sort, which consumes the graph:
//
//	order, err := toposort.Sort(g)
//	switch {
//	case err == nil:
//	    // order is a permutation of 0..N-1; every edge points forward
//	case errors.Is(err, toposort.ErrCycleDetected):
//	    for _, comp := range toposort.Components(err) {
//	        // comp groups vertices that participate in one cycle
//	    }
//	}
//
// A cyclic graph is the expected alternate outcome, not an exceptional
// condition: Sort reports it as a *CycleError carrying the strongly
// connected components, and callers branch on it to explain dependency
// cycles to their users. Only vertices that sit on a cycle appear in the
// components; acyclic vertices - isolated or not - are never reported.
// A self-loop counts as a one-vertex cycle.
//
// Both phases share one pass of mutable state: the Kahn phase decrements
// the graph's in-degree counters in place, and the Kosaraju phase runs
// two iterative depth-first passes (forward finish order, then
// reverse-edge collection) over a per-vertex three-state marker. That is
// why Sort takes ownership of the graph - after the call the degree
// counters are scratch, and the graph refuses further use. Clone first
// if you need to keep it.
//
// Complexity:
//
//   - Time:   O(V + E) for both phases combined
//   - Memory: O(V) beyond the graph itself (queue, marker, DFS stack;
//     the DFS is stack-based and explicit, so depth is bounded by V,
//     not by call depth)
//
// Determinism: for a fixed edge-insertion order the output order is
// fixed too - the Kahn queue is FIFO and adjacency lists are traversed
// in insertion order, so ties resolve insertion-order-stably. Which
// vertices group into each component is a contract; the order of
// components and of vertices within a component follows traversal order
// and is stable but not otherwise meaningful.
package toposort
