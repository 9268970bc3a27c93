package keyed

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/toposcc/digraph"
	"github.com/katalvlaran/toposcc/toposort"
)

// Codec converts between caller-owned opaque identifiers and dense
// vertex indices. ToIndex and FromIndex must be pure inverse functions
// with respect to Tag: FromIndex(Tag, ToIndex(k)) must reproduce k.
//
// Both function fields are required; FromItems panics on a nil one,
// since a half-wired codec is a programming error, not a runtime
// condition.
type Codec[K any] struct {
	// Tag is an opaque group/generation discriminator passed back to
	// FromIndex, so handle schemes that embed one can round-trip it.
	Tag uint32

	// ToIndex maps a key to its dense index in 0..N-1.
	ToIndex func(key K) int

	// FromIndex reconstructs the key for a dense index under the tag.
	FromIndex func(tag uint32, index int) K
}

// Graph pairs a digraph under construction with the codec used to
// translate its indices. Build one with FromItems, then call Sort once.
type Graph[K any] struct {
	graph *digraph.Graph
	codec Codec[K]
}

// Builder wraps a digraph.Builder so the per-item callback can declare
// edges in terms of opaque keys instead of indices.
type Builder[K any] struct {
	builder digraph.Builder
	codec   *Codec[K]
}

// Index returns the dense index of the item this builder is bound to.
func (b Builder[K]) Index() int { return b.builder.Index() }

// AddOutEdge adds an edge from the bound item to the item identified by key.
func (b Builder[K]) AddOutEdge(key K) { b.builder.AddOutEdge(b.codec.ToIndex(key)) }

// AddInEdge adds an edge from the item identified by key to the bound item.
func (b Builder[K]) AddInEdge(key K) { b.builder.AddInEdge(b.codec.ToIndex(key)) }

// FromItems builds a keyed graph with one vertex per item, in the same
// single pass as digraph.FromItems. Item order defines the dense
// indices, so codec.ToIndex must agree with it.
// A codec with a nil ToIndex or FromIndex panics.
func FromItems[K, T any](codec Codec[K], items []T, fn func(Builder[K], T)) *Graph[K] {
	if codec.ToIndex == nil || codec.FromIndex == nil {
		panic("keyed: Codec requires non-nil ToIndex and FromIndex")
	}

	g := &Graph[K]{codec: codec}
	g.graph = digraph.FromItems(items, func(b digraph.Builder, item T) {
		fn(Builder[K]{builder: b, codec: &g.codec}, item)
	})

	return g
}

// Graph exposes the underlying index graph, e.g. to Transpose or Clone
// it before sorting. Index-based mutations bypass the codec.
func (g *Graph[K]) Graph() *digraph.Graph { return g.graph }

// Sort consumes the underlying graph via toposort.Sort and translates
// the outcome back into keys: a topological order of keys on success, or
// a *CycleError[K] whose components hold keys instead of indices. The
// error still wraps toposort.ErrCycleDetected, so errors.Is branches the
// same way as for the index-based engine.
func (g *Graph[K]) Sort() ([]K, error) {
	order, err := toposort.Sort(g.graph)
	if err != nil {
		comps := toposort.Components(err)
		if comps == nil {
			return nil, err // nil or consumed graph; nothing to translate
		}

		keyed := make([][]K, len(comps))
		for i, comp := range comps {
			keyed[i] = g.keys(comp)
		}

		return nil, &CycleError[K]{Components: keyed}
	}

	return g.keys(order), nil
}

// keys maps a slice of dense indices through the codec.
func (g *Graph[K]) keys(indices []int) []K {
	out := make([]K, len(indices))
	for i, idx := range indices {
		out[i] = g.codec.FromIndex(g.codec.Tag, idx)
	}

	return out
}

// CycleError mirrors toposort.CycleError with components translated to
// the caller's key type. It wraps toposort.ErrCycleDetected.
type CycleError[K any] struct {
	Components [][]K
}

// Error implements the error interface.
func (e *CycleError[K]) Error() string {
	return fmt.Sprintf("keyed: graph is cyclic (%d strongly connected component(s))", len(e.Components))
}

// Unwrap makes errors.Is(err, toposort.ErrCycleDetected) work.
func (e *CycleError[K]) Unwrap() error { return toposort.ErrCycleDetected }

// Components extracts the keyed components from an error returned by
// Graph.Sort, or nil if err carries no *CycleError[K].
func Components[K any](err error) [][]K {
	var ce *CycleError[K]
	if errors.As(err, &ce) {
		return ce.Components
	}

	return nil
}
