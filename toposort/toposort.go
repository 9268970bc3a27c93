package toposort

import (
	"github.com/katalvlaran/toposcc/digraph"
)

// sorter encapsulates the shared mutable state of both phases.
type sorter struct {
	verts  []digraph.Vertex // consumed vertex table; InDeg is Kahn scratch
	state  []uint8          // Kosaraju marker: white/gray/black per vertex
	finish []int            // forward-pass finish order (post-order)
}

// frame is one explicit-stack entry of the iterative DFS: vertex v with
// its next unexplored edge offset. Keeping the edge offset in the frame
// bounds the stack by V instead of recursing per edge.
type frame struct {
	v    int
	edge int
}

// Sort consumes g and returns either a topological ordering of all its
// vertices or, when g is cyclic, a *CycleError listing the strongly
// connected components.
//
// On success the order is a permutation of 0..N-1 in which every edge
// u→v places u before v; ties resolve by insertion order. On a cyclic
// graph the returned order is nil and the error wraps ErrCycleDetected;
// use Components or errors.As to recover the SCCs.
//
// Sort takes exclusive ownership: it marks g consumed and repurposes its
// in-degree counters as scratch, so g cannot be sorted or mutated again
// (a second Sort returns digraph.ErrConsumed). Sorting a nil graph
// returns ErrGraphNil. An empty graph sorts to an empty order.
//
// Complexity: O(V+E) time, O(V) extra space, single-threaded.
func Sort(g *digraph.Graph) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Take ownership of the vertex table (one-way door)
	verts, err := g.Consume()
	if err != nil {
		return nil, err
	}
	s := &sorter{
		verts: verts,
		state: make([]uint8, len(verts)),
	}
	// 3. Phase A: Kahn's algorithm
	order := s.kahn()
	if len(order) == len(s.verts) {
		return order, nil
	}
	// 4. Phase B: the incomplete order proves a cycle; extract the SCCs
	s.forwardPass()

	return nil, &CycleError{Components: s.reversePass()}
}

// kahn runs Kahn's algorithm: seed a FIFO queue with every in-degree-zero
// vertex, then repeatedly dequeue, record, and decrement the in-degrees
// of out-neighbors, enqueueing each one that drops to zero. The returned
// order covers every vertex exactly when the graph is acyclic.
func (s *sorter) kahn() []int {
	order := make([]int, 0, len(s.verts))
	queue := make([]int, 0, len(s.verts))

	// Seed with vertices that depend on nothing, in index order.
	for idx := range s.verts {
		if s.verts[idx].InDeg == 0 {
			queue = append(queue, idx)
		}
	}

	var idx, next int
	for len(queue) > 0 {
		idx, queue = queue[0], queue[1:]
		order = append(order, idx)

		for _, next = range s.verts[idx].Out {
			s.verts[next].InDeg--
			if s.verts[next].InDeg == 0 {
				queue = append(queue, next)
			}
		}
	}

	return order
}

// forwardPass records every vertex in DFS finish order (post-order) over
// the original edge direction, restarting from each still-white vertex
// in index order so disconnected regions are covered too. Vertices end
// up gray with their finish sequence in s.finish.
func (s *sorter) forwardPass() {
	s.finish = make([]int, 0, len(s.verts))
	stack := make([]frame, 0, len(s.verts))

	var f frame
	var next int
	for root := range s.verts {
		if s.state[root] != white {
			continue
		}
		s.state[root] = gray
		stack = append(stack, frame{v: root})

		for len(stack) > 0 {
			f, stack = stack[len(stack)-1], stack[:len(stack)-1]

			if f.edge < len(s.verts[f.v].Out) {
				// Re-push with the edge offset advanced, then descend.
				stack = append(stack, frame{v: f.v, edge: f.edge + 1})

				next = s.verts[f.v].Out[f.edge]
				if s.state[next] == white {
					s.state[next] = gray
					stack = append(stack, frame{v: next})
				}
			} else {
				// All out-edges explored: the vertex is finished.
				s.finish = append(s.finish, f.v)
			}
		}
	}
}

// reversePass processes finish-order vertices from last to first as SCC
// roots. Each unclaimed root starts a DFS over the reverse edge
// direction (walking In lists) that turns every gray vertex it reaches
// black and collects it. If the root itself ends up black it was
// revisited through a cycle and the collection is one SCC; otherwise the
// root is a trivial acyclic vertex and is blackened without emitting a
// component. Self-loops revisit their root through their own in-edge and
// therefore form one-vertex components.
func (s *sorter) reversePass() [][]int {
	var comps [][]int
	stack := make([]frame, 0, len(s.verts))

	var f frame
	var root, next int
	for i := len(s.finish) - 1; i >= 0; i-- {
		root = s.finish[i]
		if s.state[root] == black {
			continue // already claimed by an earlier component
		}

		var comp []int
		stack = append(stack, frame{v: root})

		for len(stack) > 0 {
			f, stack = stack[len(stack)-1], stack[:len(stack)-1]

			if f.edge < len(s.verts[f.v].In) {
				stack = append(stack, frame{v: f.v, edge: f.edge + 1})

				next = s.verts[f.v].In[f.edge]
				if s.state[next] == gray {
					s.state[next] = black
					stack = append(stack, frame{v: next})
					comp = append(comp, next)
				}
			}
		}

		if s.state[root] == black {
			comps = append(comps, comp)
		} else {
			s.state[root] = black
		}
	}

	return comps
}
