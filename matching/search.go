package matching

import (
	"github.com/katalvlaran/lvlath/blossom"
	"github.com/katalvlaran/lvlath/forest"
	"github.com/katalvlaran/lvlath/graph"
	"github.com/katalvlaran/lvlath/marker"
	"github.com/katalvlaran/lvlath/pairing"
)

// AugmentingPath runs one alternating-BFS search for an augmenting path with
// respect to p over g, returning it (or nil, nil if p is already maximum).
//
// The search builds a fresh Forest rooted at every currently unmatched
// vertex and grows it by following unmatched-then-matched edge pairs. Two
// even-parity tree vertices sharing a root close a blossom: the blossom is
// contracted out of both g and p, the same search runs on the contracted
// pair, and any path it finds is lifted back through the blossom before
// this call returns it.
//
// AugmentingPath never mutates p; augmentation is the caller's
// responsibility (see MaximumMatching). The returned error is always nil:
// internal invariant violations, including blossom.Lift's parity check,
// panic instead. The preconditions are that g is a simple, loop-free
// undirected graph and p is a valid partial matching of g.
//
// Complexity: O(V·E) amortized across the outer/inner loops, plus O(V) per
// blossom contraction, of which there are at most |V|/2.
func AugmentingPath(g graph.Graph, p *pairing.Pairing, opts ...Option) ([]graph.VertexID, error) {
	cfg := newConfig(opts...)

	return augmentingPath(g, p, cfg)
}

func augmentingPath(g graph.Graph, p *pairing.Pairing, cfg config) ([]graph.VertexID, error) {
	f := forest.New()
	mk := marker.New()

	for _, e := range p.Edges() {
		mk.MarkEdge(e.From, e.To)
	}

	for _, v := range g.Vertices() {
		if !p.Has(v) {
			if err := f.AddRoot(v); err != nil {
				panic("matching: AugmentingPath: " + err.Error())
			}
		}
	}

	for {
		v, ok := nextEvenUnmarkedVertex(f, mk)
		if !ok {
			return nil, nil
		}

		path, err := exploreFromVertex(g, p, f, mk, v, cfg)
		if err != nil {
			return nil, err
		}
		if path != nil {
			return path, nil
		}

		mk.MarkVertex(v)
	}
}

// nextEvenUnmarkedVertex returns the first even-parity forest vertex (in
// insertion order) not yet marked as visited, or ok=false if none remains.
func nextEvenUnmarkedVertex(f *forest.Forest, mk *marker.Marker) (graph.VertexID, bool) {
	for _, v := range f.EvenVertices() {
		if !mk.HasVertex(v) {
			return v, true
		}
	}

	return 0, false
}

// exploreFromVertex runs the inner loop of augmenting-path search: it tries
// every not-yet-marked edge out of v in turn, extending the forest, closing
// a blossom, or finding the augmenting path outright. It returns a non-nil
// path as soon as one is found; nil, nil means v is exhausted and the outer
// loop should mark v and move on.
func exploreFromVertex(g graph.Graph, p *pairing.Pairing, f *forest.Forest, mk *marker.Marker, v graph.VertexID, cfg config) ([]graph.VertexID, error) {
	neighbors, err := g.Neighbors(v)
	if err != nil {
		panic("matching: AugmentingPath: " + err.Error())
	}

	for _, w := range neighbors {
		if mk.HasEdge(v, w) {
			continue
		}

		path, err := visitEdge(g, p, f, mk, v, w, cfg)
		mk.MarkEdge(v, w)
		if err != nil {
			return nil, err
		}
		if path != nil {
			return path, nil
		}
	}

	return nil, nil
}

// visitEdge dispatches on whether w is already in the forest, and if so on
// its parity, per §4.E step 5 of the augmenting-path specification.
func visitEdge(g graph.Graph, p *pairing.Pairing, f *forest.Forest, mk *marker.Marker, v, w graph.VertexID, cfg config) ([]graph.VertexID, error) {
	if !f.Has(w) {
		x, err := p.Mate(w)
		if err != nil {
			panic("matching: AugmentingPath: tree extension reached an unmatched non-root vertex: " + err.Error())
		}
		if err := f.AddEdge(v, w); err != nil {
			panic("matching: AugmentingPath: " + err.Error())
		}
		if err := f.AddEdge(w, x); err != nil {
			panic("matching: AugmentingPath: " + err.Error())
		}

		return nil, nil
	}

	odd, err := f.IsOdd(w)
	if err != nil {
		panic("matching: AugmentingPath: " + err.Error())
	}
	if odd {
		return nil, nil
	}

	rv, err := f.Root(v)
	if err != nil {
		panic("matching: AugmentingPath: " + err.Error())
	}
	rw, err := f.Root(w)
	if err != nil {
		panic("matching: AugmentingPath: " + err.Error())
	}

	if rv != rw {
		pv, err := f.Path(v)
		if err != nil {
			panic("matching: AugmentingPath: " + err.Error())
		}
		pw, err := f.Path(w)
		if err != nil {
			panic("matching: AugmentingPath: " + err.Error())
		}

		path := append([]graph.VertexID(nil), pv...)
		path = append(path, reverseVertices(pw)...)

		cfg.logger.Debug().
			Int("length", len(path)).
			Msg("matching: augmenting path found")

		return path, nil
	}

	return closeBlossom(g, p, f, v, w, cfg)
}

// closeBlossom handles the root(v) == root(w) case: v and w are both even
// and share a tree root, so path(v) and path(w) close an odd cycle. The
// blossom is contracted out of g and p, the search recurses on the
// contracted pair, and any result is lifted back through the blossom.
func closeBlossom(g graph.Graph, p *pairing.Pairing, f *forest.Forest, v, w graph.VertexID, cfg config) ([]graph.VertexID, error) {
	pv, err := f.Path(v)
	if err != nil {
		panic("matching: AugmentingPath: " + err.Error())
	}
	pw, err := f.Path(w)
	if err != nil {
		panic("matching: AugmentingPath: " + err.Error())
	}

	freshID := g.MaxVertexID() + 1
	b, err := blossom.New(freshID, reverseVertices(pv), reverseVertices(pw))
	if err != nil {
		panic("matching: AugmentingPath: " + err.Error())
	}

	cfg.logger.Debug().
		Int64("blossom_id", int64(b.ID)).
		Int("cycle_len", len(b.Path)).
		Msg("matching: blossom contracted")

	contractedG := b.ContractGraph(g)
	contractedP := b.ContractPairing(p)

	contractedPath, err := augmentingPath(contractedG, contractedP, cfg)
	if err != nil {
		return nil, err
	}
	if contractedPath == nil {
		return nil, nil
	}
	// A lone-vertex contracted path means the blossom itself was the only
	// thing found at this recursion level; Blossom.Lift returns its raw odd
	// cycle in that case, which is not a valid augmenting path. Per §4.D the
	// driver treats this as "no augmentation" and keeps searching.
	if len(contractedPath) == 1 {
		return nil, nil
	}

	return b.Lift(contractedPath, g), nil
}

// reverseVertices returns a freshly allocated reversal of path.
func reverseVertices(path []graph.VertexID) []graph.VertexID {
	out := make([]graph.VertexID, len(path))
	for i, v := range path {
		out[len(path)-1-i] = v
	}

	return out
}
