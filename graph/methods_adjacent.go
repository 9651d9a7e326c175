// File: methods_adjacent.go
// Role: Neighborhood queries.
//
// Determinism:
//   - Neighbors() returns ids sorted ascending.
// Concurrency:
//   - Read operations hold muVert and/or muAdj read locks as needed.
package graph

import "golang.org/x/exp/slices"

// Neighbors lists the vertices adjacent to id, ascending.
//
// Complexity: O(d log d), d = degree(id).
func (g *AdjacencyGraph) Neighbors(id VertexID) ([]VertexID, error) {
	g.muVert.RLock()
	_, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return nil, ErrVertexNotFound
	}

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	out := make([]VertexID, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		out = append(out, n)
	}
	slices.Sort(out)

	return out, nil
}
