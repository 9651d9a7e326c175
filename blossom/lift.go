package blossom

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvlath/graph"
)

// Lift maps an augmenting path found over the contracted graph back onto the
// original graph g, reversing the vertex replacement ContractGraph performed.
//
// Five cases, dispatched on the position of b.ID within path:
//
//   - absent: path is returned unchanged.
//   - path == [b.ID]: the blossom's own cycle is returned verbatim (the
//     caller treats a lone-blossom result as "no augmentation", per the
//     driver's contract — see package matching).
//   - b.ID is the last element: the blossom was entered but not exited; the
//     cycle is rotated so it can be entered from the path's last real
//     vertex, and appended.
//   - b.ID is the first element: symmetric, rotated so it can exit toward
//     the path's first real vertex, and prepended.
//   - b.ID is interior ([...,s,id,t,...]): the cycle must be entered from s
//     and exited toward t. Two traversal directions around the cycle are
//     legal; the one producing an even-length total (required for the
//     result to remain an alternating path) is chosen.
//
// Panics if no rotation satisfies the required adjacency, or if neither
// traversal direction of the interior case yields an even-length path — both
// indicate b was not built from genuine forest paths in g, which the search
// in package matching never does.
func (b *Blossom) Lift(path []graph.VertexID, g graph.Graph) []graph.VertexID {
	idx := slices.Index(path, b.ID)
	if idx == -1 {
		return path
	}

	if len(path) == 1 {
		return append([]graph.VertexID(nil), b.Path...)
	}

	switch {
	case idx == len(path)-1:
		s := path[idx-1]
		rotated := rotateToEntry(b.Path, s, g)
		out := append([]graph.VertexID(nil), path[:idx]...)

		return append(out, rotated...)
	case idx == 0:
		t := path[idx+1]
		rotated := rotateToExit(b.Path, t, g)
		out := append([]graph.VertexID(nil), rotated...)

		return append(out, path[idx+1:]...)
	default:
		s, t := path[idx-1], path[idx+1]
		left := path[:idx]
		right := path[idx+1:]

		forward := scanThrough(b.Path, s, t, g)
		total := len(left) + len(forward) + len(right)
		if total%2 == 0 {
			out := append([]graph.VertexID(nil), left...)
			out = append(out, forward...)

			return append(out, right...)
		}

		reversedCycle := append([]graph.VertexID(nil), b.Path...)
		slices.Reverse(reversedCycle)
		backward := scanThrough(reversedCycle, s, t, g)
		if (len(left)+len(backward)+len(right))%2 != 0 {
			panic("blossom: lift produced a non-adjacent or odd path")
		}
		out := append([]graph.VertexID(nil), left...)
		out = append(out, backward...)

		return append(out, right...)
	}
}

// rotateToEntry returns the cyclic rotation of cycle whose first element is
// adjacent to s in g.
func rotateToEntry(cycle []graph.VertexID, s graph.VertexID, g graph.Graph) []graph.VertexID {
	for k := 0; k < len(cycle); k++ {
		rotated := rotateLeft(cycle, k)
		if g.HasEdge(rotated[0], s) {
			return rotated
		}
	}
	panic("blossom: lift: no entry rotation adjacent to predecessor")
}

// rotateToExit returns the cyclic rotation of cycle whose last element is
// adjacent to t in g.
func rotateToExit(cycle []graph.VertexID, t graph.VertexID, g graph.Graph) []graph.VertexID {
	for k := 0; k < len(cycle); k++ {
		rotated := rotateLeft(cycle, k)
		if g.HasEdge(rotated[len(rotated)-1], t) {
			return rotated
		}
	}
	panic("blossom: lift: no exit rotation adjacent to successor")
}

// scanThrough rotates cycle so its first element enters from s, then walks it
// from the front, emitting vertices up to and including the first one
// adjacent to t.
func scanThrough(cycle []graph.VertexID, s, t graph.VertexID, g graph.Graph) []graph.VertexID {
	rotated := rotateToEntry(cycle, s, g)

	for i, v := range rotated {
		if g.HasEdge(v, t) {
			return append([]graph.VertexID(nil), rotated[:i+1]...)
		}
	}
	panic("blossom: lift: no exit point adjacent to successor while scanning")
}

// rotateLeft returns a fresh slice equal to cycling s left by k positions:
// rotateLeft([a,b,c], 1) == [b,c,a].
func rotateLeft(s []graph.VertexID, k int) []graph.VertexID {
	n := len(s)
	out := make([]graph.VertexID, n)
	for i := 0; i < n; i++ {
		out[i] = s[(i+k)%n]
	}

	return out
}
