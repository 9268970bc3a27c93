package toposort_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/toposcc/digraph"
	"github.com/katalvlaran/toposcc/toposort"
)

// ExampleSort demonstrates ordering an acyclic dependency graph.
// Graph structure (edges point from prerequisite to dependent):
//
//	0 ─→ 3 ─→ 5
//	1 ─→ 3 ─→ 6 ←─ 4
//	2 ─→ 4    7 ←─ 3
//	2 ─────────→ 7
func ExampleSort() {
	g := digraph.FromAdjacency([][]int{
		{3},       // 0 → 3
		{3, 4},    // 1 → 3, 1 → 4
		{4, 7},    // 2 → 4, 2 → 7
		{5, 6, 7}, // 3 → 5, 3 → 6, 3 → 7
		{6},       // 4 → 6
		{}, {}, {},
	})

	order, err := toposort.Sort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(order)

	// Output:
	// [0 1 2 3 4 5 7 6]
}

// ExampleSort_cyclic shows the fallback outcome: a self-loop and a back
// edge make the graph cyclic, and Sort reports the strongly connected
// components instead of an order.
func ExampleSort_cyclic() {
	g := digraph.FromAdjacency([][]int{
		{3}, {3, 4}, {4, 7}, {5, 6, 7}, {6}, {}, {}, {},
	})
	g.AddEdge(0, 0) // self-loop: a one-vertex cycle
	g.AddEdge(6, 2) // closes the cycle 2 → 4 → 6 → 2

	_, err := toposort.Sort(g)
	if !errors.Is(err, toposort.ErrCycleDetected) {
		fmt.Println("unexpected:", err)
		return
	}

	for _, comp := range toposort.Components(err) {
		fmt.Println("cycle:", comp)
	}

	// Output:
	// cycle: [0]
	// cycle: [4 2 6]
}
