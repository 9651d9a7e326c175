package matching

import (
	"github.com/katalvlaran/lvlath/graph"
	"github.com/katalvlaran/lvlath/pairing"
)

// Greedy builds a maximal matching by a single depth-first pass over each
// connected component of g: whenever a traversal step visits an edge (s,t)
// with both s and t currently unpaired, that edge is added to the pairing.
//
// The result is maximal (no edge of g has both endpoints unmatched) but not
// necessarily maximum; it exists to shorten the number of augmentations a
// subsequent MaximumMatching call needs to perform.
//
// Complexity: O(V + E).
func Greedy(g graph.Graph, opts ...Option) *pairing.Pairing {
	cfg := newConfig(opts...)
	p := pairing.New()

	components := graph.ConnectedComponents(g)
	for _, c := range components {
		vertices := c.Vertices()
		if len(vertices) == 0 {
			continue
		}

		visited := make(map[graph.VertexID]bool, len(vertices))
		greedyDFS(c, vertices[0], visited, p)
	}

	cfg.logger.Debug().
		Int("components", len(components)).
		Int("seeded_pairs", len(p.Edges())).
		Msg("matching: greedy seed complete")

	return p
}

// greedyDFS walks g depth-first from v, pairing (s,t) the first time a step
// visits an edge between two currently unpaired vertices.
func greedyDFS(g graph.Graph, v graph.VertexID, visited map[graph.VertexID]bool, p *pairing.Pairing) {
	visited[v] = true

	neighbors, err := g.Neighbors(v)
	if err != nil {
		panic("matching: Greedy: " + err.Error())
	}

	for _, w := range neighbors {
		if visited[w] {
			continue
		}

		if !p.Has(v) && !p.Has(w) {
			p.Pair(v, w)
		}

		greedyDFS(g, w, visited, p)
	}
}
