// Package pairing implements the matching core's symmetric vertex ↔ mate
// mapping: a finite map M with M(u)=v ⇔ M(v)=u and u ≠ v.
//
// Pairing carries no lock: the matching core is single-threaded (see package
// matching), and a Pairing is mutated only by the top-level driver, never by
// the search itself while it reads a graph.
//
// Core methods:
//
//	New() *Pairing
//	Has(v graph.VertexID) bool
//	Mate(v graph.VertexID) (graph.VertexID, error)
//	Pair(u, v graph.VertexID)
//	Edges() []graph.Edge
//	Augment(path []graph.VertexID) error
package pairing

import (
	"errors"
	"sort"

	"github.com/katalvlaran/lvlath/graph"
)

// Sentinel errors for pairing operations.
var (
	// ErrMissingVertex indicates Mate was called on an unmatched vertex.
	ErrMissingVertex = errors.New("pairing: vertex not matched")

	// ErrOddPath indicates Augment was called with an odd-length vertex sequence.
	ErrOddPath = errors.New("pairing: odd-length augmenting path")
)

// Pairing is a symmetric mapping of matched vertex to mate.
type Pairing struct {
	mates map[graph.VertexID]graph.VertexID
}

// New creates an empty Pairing.
//
// Complexity: O(1).
func New() *Pairing {
	return &Pairing{mates: make(map[graph.VertexID]graph.VertexID)}
}

// Has reports whether v is currently matched.
//
// Complexity: O(1).
func (p *Pairing) Has(v graph.VertexID) bool {
	_, ok := p.mates[v]

	return ok
}

// Mate returns v's current mate, or ErrMissingVertex if v is unmatched.
//
// Complexity: O(1).
func (p *Pairing) Mate(v graph.VertexID) (graph.VertexID, error) {
	m, ok := p.mates[v]
	if !ok {
		return 0, ErrMissingVertex
	}

	return m, nil
}

// Pair sets M(u)=v and M(v)=u. If u (or v) was previously matched to some
// other vertex, that old mate is silently unmatched. Pairing a vertex to its
// current mate is a no-op.
//
// Complexity: O(1).
func (p *Pairing) Pair(u, v graph.VertexID) {
	if old, ok := p.mates[u]; ok {
		if old == v {
			return
		}
		delete(p.mates, old)
	}
	if old, ok := p.mates[v]; ok {
		delete(p.mates, old)
	}

	p.mates[u] = v
	p.mates[v] = u
}

// Edges enumerates the current matching once, each pair (u,v) with u<v.
//
// Complexity: O(|M| log |M|) for a stable, sorted iteration order.
func (p *Pairing) Edges() []graph.Edge {
	out := make([]graph.Edge, 0, len(p.mates)/2)
	for u, v := range p.mates {
		if u < v {
			out = append(out, graph.Edge{From: u, To: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })

	return out
}

// Augment re-pairs along an alternating path: path must have even length, and
// every even-indexed adjacent pair (path[2i], path[2i+1]) becomes a matching
// edge, silently displacing any existing mates of those vertices. This
// expresses the symmetric difference M ⊕ path: every odd-indexed adjacent
// pair was already in M (by construction of an augmenting path), and Pair's
// displacement semantics remove it as the even-indexed pairs are written.
//
// Complexity: O(len(path)).
func (p *Pairing) Augment(path []graph.VertexID) error {
	if len(path)%2 != 0 {
		return ErrOddPath
	}

	for i := 0; i < len(path); i += 2 {
		p.Pair(path[i], path[i+1])
	}

	return nil
}
