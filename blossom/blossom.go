// Package blossom implements the odd-cycle handling at the heart of Edmonds'
// algorithm: constructing a Blossom from two even-parity forest paths,
// contracting a host graph and a pairing through it, and lifting an
// augmenting path found in the contracted graph back through the blossom.
//
// A Blossom is constructed transiently inside one augmenting-path search and
// discarded once that search's recursive call returns (see package
// matching), so it carries no lock and no persistence.
package blossom

import (
	"errors"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvlath/graph"
	"github.com/katalvlaran/lvlath/pairing"
)

// ErrNoCommonBase indicates New was supplied two paths that share no vertex.
var ErrNoCommonBase = errors.New("blossom: paths share no common base")

// Blossom is the odd cycle path[0..2k] formed when an augmenting-path search
// finds two even-parity tree edges closing a cycle within the same tree.
type Blossom struct {
	ID   graph.VertexID
	Path []graph.VertexID
}

// New builds a Blossom from two forest paths given vertex-first, root-last
// (the reverse of forest.Forest.Path's root-first order — reverse the result
// of Path before calling New) that share a common base vertex.
//
// It scans left outermost and right innermost for the first matching pair of
// indices (i,j) with left[i] == right[j] — which, because left and right are
// root-anchored paths from the very same tree, locates their common ancestor
// without assuming the two paths have identical prefixes. The resulting
// cycle is left[:i+1] (v-side, ending at the shared vertex) followed by
// right[:j] reversed (root-adjacent-first back out to w), i.e. a path that
// runs from v through the shared base to w.
//
// Fails with ErrNoCommonBase if no shared vertex exists.
func New(id graph.VertexID, left, right []graph.VertexID) (*Blossom, error) {
	for i := range left {
		for j := range right {
			if left[i] == right[j] {
				path := make([]graph.VertexID, 0, i+1+j)
				path = append(path, left[:i+1]...)
				tail := append([]graph.VertexID(nil), right[:j]...)
				slices.Reverse(tail)
				path = append(path, tail...)

				return &Blossom{ID: id, Path: path}, nil
			}
		}
	}

	return nil, ErrNoCommonBase
}

// ContractGraph returns a new graph in which every vertex of g that belongs
// to the blossom's path is replaced by the single vertex b.ID.
//
// Construction order: b.ID is added first, then every non-path vertex of g
// in iteration order, then edges — edges wholly inside the path are dropped,
// edges with exactly one endpoint in the path become (b.ID, other), and
// edges with neither endpoint in the path are kept as-is. Duplicate
// (b.ID, other) edges (when two different blossom members connect to the
// same outside vertex) are deduplicated via HasEdge before insertion.
func (b *Blossom) ContractGraph(g graph.Graph) graph.Graph {
	out := graph.NewAdjacencyGraph()
	_ = out.AddVertex(b.ID)

	for _, v := range g.Vertices() {
		if !slices.Contains(b.Path, v) {
			_ = out.AddVertex(v)
		}
	}

	for _, e := range g.Edges() {
		sIn := slices.Contains(b.Path, e.From)
		tIn := slices.Contains(b.Path, e.To)

		switch {
		case sIn && tIn:
			continue
		case sIn:
			addContractedEdge(out, b.ID, e.To)
		case tIn:
			addContractedEdge(out, b.ID, e.From)
		default:
			if !out.HasEdge(e.From, e.To) {
				_ = out.AddEdge(e.From, e.To)
			}
		}
	}

	return out
}

func addContractedEdge(out *graph.AdjacencyGraph, id, other graph.VertexID) {
	if id == other {
		return
	}
	if !out.HasEdge(id, other) {
		_ = out.AddEdge(id, other)
	}
}

// ContractPairing returns a new pairing in which every member of the
// blossom's path appearing in a matched edge is replaced by b.ID. A matched
// edge wholly inside the path is internal to the blossom and is dropped.
func (b *Blossom) ContractPairing(m *pairing.Pairing) *pairing.Pairing {
	out := pairing.New()

	for _, e := range m.Edges() {
		sIn := slices.Contains(b.Path, e.From)
		tIn := slices.Contains(b.Path, e.To)

		switch {
		case sIn && tIn:
			continue
		case sIn:
			out.Pair(b.ID, e.To)
		case tIn:
			out.Pair(e.From, b.ID)
		default:
			out.Pair(e.From, e.To)
		}
	}

	return out
}
