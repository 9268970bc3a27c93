// Package toposcc orders directed graphs - or explains why they cannot
// be ordered.
//
// 🚀 What is toposcc?
//
//	A small, zero-surprise library for build systems, dependency resolvers
//	and compilers that need to schedule work items:
//		• digraph/  - dense-index adjacency-list graph store (in/out edges,
//		  degree counters, transposition, bulk builders)
//		• toposort/ - the combined engine: Kahn's algorithm for topological
//		  sorting, falling back to Kosaraju's algorithm for strongly
//		  connected components when the graph is cyclic
//		• keyed/    - optional adapter that maps caller-owned opaque
//		  identifiers onto dense indices and translates results back
//
// ✨ Why choose toposcc?
//
//   - One call, two answers - Sort returns either a full topological order
//     or the exact set of strongly connected components, in O(V+E) time
//     and O(V) extra space
//   - Deterministic - output is stable for a fixed edge-insertion order
//   - Pure Go - no cgo, no hidden deps
//   - Honest errors - cycles are a value-level outcome (errors.Is/As),
//     never a panic; only contract violations abort
//
// Quick ASCII example:
//
//	0 ─→ 3 ─→ 5
//	1 ─→ 3 ─→ 6
//	2 ─→ 4 ─→ 6
//
//	sorts to a linear order where every arrow points forward.
//
// Dive into each package's doc.go for the full API, complexity notes and
// runnable examples; examples/ holds end-to-end demos.
package toposcc
