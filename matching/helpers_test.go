package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/graph"
)

// buildGraph constructs an AdjacencyGraph over vertices 0..n-1 plus edges.
func buildGraph(t *testing.T, n int, edges [][2]graph.VertexID) *graph.AdjacencyGraph {
	t.Helper()
	g := graph.NewAdjacencyGraph()
	for v := graph.VertexID(0); v < graph.VertexID(n); v++ {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// assertValidMatching checks invariant 1 of §8 on the edge list from
// Edges(): every matched edge is a real edge of g, and no vertex appears in
// more than one matched edge.
func assertValidMatching(t *testing.T, g graph.Graph, edges []graph.Edge) {
	t.Helper()

	seen := make(map[graph.VertexID]bool)
	for _, e := range edges {
		require.True(t, g.HasEdge(e.From, e.To), "matched edge %v not present in graph", e)
		require.False(t, seen[e.From], "vertex %d appears in more than one matched edge", e.From)
		require.False(t, seen[e.To], "vertex %d appears in more than one matched edge", e.To)
		seen[e.From] = true
		seen[e.To] = true
	}
}

// icosahedronEdges returns the 30 edges of the regular icosahedron, grounded
// on gonum's spatial/r3 icosahedron triangulation (icosahedron() in
// spatial/r3/icosahedron_example_test.go): the 20 triangular faces listed
// there, with duplicate edges across shared faces collapsed.
func icosahedronEdges() [][2]int {
	return [][2]int{
		{0, 1}, {1, 4}, {0, 4}, {4, 9}, {0, 9}, {4, 5}, {5, 9}, {4, 8}, {5, 8},
		{1, 8}, {1, 10}, {8, 10}, {3, 10}, {3, 8}, {3, 5}, {2, 3}, {2, 5},
		{3, 7}, {2, 7}, {7, 10}, {6, 10}, {6, 7}, {6, 11}, {7, 11}, {0, 6},
		{0, 11}, {1, 6}, {9, 11}, {2, 9}, {2, 11},
	}
}

// buildC60Fullerene truncates the icosahedron into its buckminsterfullerene
// dual: each of the 12 degree-5 vertices becomes a pentagon of 5 new
// vertices (one per incident edge), consecutive pentagon vertices are
// joined, and each of the 30 original edges becomes one cross-edge joining
// the two pentagons it touches. The result is the standard 60-vertex,
// 90-edge, 3-regular truncated-icosahedral graph: bridgeless (the
// icosahedron is far more than 1-edge-connected, so removing any single
// pentagon or cross edge leaves it connected), hence by Petersen's theorem
// it has a perfect matching of size 30.
func buildC60Fullerene(t *testing.T) *graph.AdjacencyGraph {
	t.Helper()

	edges := icosahedronEdges()
	neighbors := make(map[int][]int)
	for _, e := range edges {
		neighbors[e[0]] = append(neighbors[e[0]], e[1])
		neighbors[e[1]] = append(neighbors[e[1]], e[0])
	}

	// Assign each (vertex, neighbor) pair a stable truncation-vertex id by
	// iterating vertices 0..11 and, within each, neighbors in ascending order.
	id := make(map[[2]int]graph.VertexID)
	next := graph.VertexID(0)
	for v := 0; v < 12; v++ {
		ns := append([]int(nil), neighbors[v]...)
		sortInts(ns)
		for _, n := range ns {
			id[[2]int{v, n}] = next
			next++
		}
	}
	require.Equal(t, graph.VertexID(60), next)

	g := graph.NewAdjacencyGraph()
	for i := graph.VertexID(0); i < next; i++ {
		require.NoError(t, g.AddVertex(i))
	}

	adjacent := make(map[[2]int]bool, 2*len(edges))
	for _, e := range edges {
		adjacent[e] = true
		adjacent[[2]int{e[1], e[0]}] = true
	}

	// Pentagon cycles: consecutive (v, neighbor) truncation vertices around v,
	// with v's neighbors put in ring order (each adjacent to the next).
	for v := 0; v < 12; v++ {
		ns := append([]int(nil), neighbors[v]...)
		sortInts(ns)
		for i := 1; i < len(ns); i++ {
			for j := i; j < len(ns); j++ {
				if adjacent[[2]int{ns[i-1], ns[j]}] {
					ns[i], ns[j] = ns[j], ns[i]
					break
				}
			}
		}
		for i := range ns {
			a := id[[2]int{v, ns[i]}]
			b := id[[2]int{v, ns[(i+1)%len(ns)]}]
			require.NoError(t, g.AddEdge(a, b))
		}
	}

	// Cross edges: one per original icosahedron edge.
	for _, e := range edges {
		a := id[[2]int{e[0], e[1]}]
		b := id[[2]int{e[1], e[0]}]
		require.NoError(t, g.AddEdge(a, b))
	}

	require.Equal(t, 90, g.EdgeCount())

	return g
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
