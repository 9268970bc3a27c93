// Package keyed adapts caller-owned opaque identifiers to the dense
// indices the digraph store requires, and translates sort results back.
//
// The core engine only ever sees contiguous indices 0..N-1. Many callers
// instead hold handles minted by an arena, an ID generator, or some
// other keyed collection. Package keyed bridges the two worlds through
// an injected pair of pure functions:
//
//	codec := keyed.Codec[MyID]{
//	    Tag:       arenaTag,                       // round-trip tag
//	    ToIndex:   func(id MyID) int { ... },      // handle → dense index
//	    FromIndex: func(tag uint32, i int) MyID { ... }, // and back
//	}
//	g := keyed.FromItems(codec, items, func(b keyed.Builder[MyID], it Item) {
//	    for _, dep := range it.Deps {
//	        b.AddOutEdge(dep)
//	    }
//	})
//	order, err := g.Sort()
//
// The Tag preserves whatever group/generation discriminator the caller's
// handle scheme embeds, so reconstructed handles compare equal to the
// originals. The adapter has no algorithmic content of its own: it is a
// thin translation shim over digraph.FromItems and toposort.Sort, and
// the core never sees or produces opaque identifiers directly.
package keyed
