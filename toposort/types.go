// Package toposort declares the sentinel errors and the CycleError type
// returned by Sort for cyclic graphs.
package toposort

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *digraph.Graph is passed to Sort.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrCycleDetected indicates the graph contains at least one cycle.
	// It is never returned directly; Sort wraps it in a *CycleError so
	// that errors.Is(err, ErrCycleDetected) branches on the outcome and
	// errors.As / Components recover the strongly connected components.
	ErrCycleDetected = errors.New("toposort: cycle detected")
)

// Visitation states of the Kosaraju phase's per-vertex marker.
const (
	white = iota // white: not yet discovered by the forward pass.
	gray         // gray: discovered by the forward pass, unassigned.
	black        // black: finalized - claimed by a component, or trivial.
)

// CycleError is the "expected failure" outcome of Sort: the graph is
// cyclic, and Components lists its strongly connected components.
//
// Each component is a non-empty slice of vertex indices that are all
// reachable from each other via non-trivial directed paths. Vertices
// that lie on no cycle never appear. Component order and the vertex
// order within a component follow traversal order; only the grouping
// itself is contractual.
type CycleError struct {
	Components [][]int
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("toposort: graph is cyclic (%d strongly connected component(s))", len(e.Components))
}

// Unwrap makes errors.Is(err, ErrCycleDetected) work on wrapped errors.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// Components extracts the strongly connected components from an error
// returned by Sort, or nil if err carries no *CycleError. It saves
// callers the errors.As boilerplate:
//
//	if comps := toposort.Components(err); comps != nil { ... }
func Components(err error) [][]int {
	var ce *CycleError
	if errors.As(err, &ce) {
		return ce.Components
	}

	return nil
}
