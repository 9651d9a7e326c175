// Package matching implements Edmonds' blossom-shrinking algorithm for
// maximum cardinality matching on an undirected simple graph.
//
// The public surface is three functions:
//
//	Greedy(g graph.Graph, opts ...Option) *pairing.Pairing
//	AugmentingPath(g graph.Graph, p *pairing.Pairing, opts ...Option) ([]graph.VertexID, error)
//	MaximumMatching(g graph.Graph, p *pairing.Pairing, opts ...Option) error
//
// MaximumMatching refines p in place by repeatedly calling AugmentingPath and
// augmenting p along whatever path it returns, until none remains. Greedy
// produces a maximal (not necessarily maximum) starting matching by a single
// depth-first pass per connected component; it is a cheap seed that usually
// shortens the number of augmentations MaximumMatching needs to perform.
//
// AugmentingPath builds a fresh alternating-BFS forest (package forest) and
// scratch marker (package marker) for one search. When it discovers two
// even-parity tree paths closing a cycle within the same tree, it builds a
// Blossom (package blossom), contracts the graph and pairing through it,
// recurses on the contracted instance, and lifts any path the recursion
// finds back through the blossom.
//
// The package carries no lock: it is single-threaded and non-suspending by
// design (see the package-level concurrency note on graph.AdjacencyGraph for
// where thread-safety actually lives). A graph.Graph passed to
// MaximumMatching or AugmentingPath must not be mutated concurrently with
// the call.
package matching
