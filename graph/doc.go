// Package graph defines the host-graph abstraction the matching core runs
// against: an undirected, loop-free, simple graph keyed by opaque integer
// vertex identifiers, plus one concrete in-memory implementation.
//
// The Graph interface is intentionally small compared to a general-purpose
// graph library — no weights, no direction, no multi-edges — because the
// matching core (see package matching) only ever needs membership,
// neighbor iteration, edge iteration, and the ability to build a fresh
// contracted graph during blossom handling.
//
// AdjacencyGraph uses separate sync.RWMutex locks internally (muVert for the
// vertex catalog, muAdj for adjacency), so a graph may safely be built or
// inspected from multiple goroutines between matching calls. The matching
// core itself does not hold these locks across a call; callers must not
// mutate a Graph concurrently with a MaximumMatching or AugmentingPath call
// that is reading it.
//
// Core methods:
//
//	AddVertex(id VertexID) error            // O(1)
//	HasVertex(id VertexID) bool              // O(1)
//	AddEdge(u, v VertexID) error             // O(1)
//	HasEdge(u, v VertexID) bool              // O(1)
//	Neighbors(id VertexID) ([]VertexID, error) // O(d log d)
//	Vertices() []VertexID                    // O(V log V)
//	Edges() []Edge                           // O(E log E)
//	MaxVertexID() VertexID                   // O(V)
//
//	ConnectedComponents(g Graph) []Graph     // O(V+E)
package graph
