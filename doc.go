// Package graph (lvlath) computes maximum-cardinality matchings on
// undirected simple graphs using Edmonds' blossom-shrinking algorithm.
//
// 🚀 What is lvlath?
//
//	A small, dependency-honest library built around one question:
//	given a graph, what is the largest set of edges with no two sharing
//	a vertex?
//
//	  • Greedy seeding: a fast maximal (not yet maximum) starting matching
//	  • Augmenting-path search: alternating-BFS forest with blossom
//	    contraction for odd cycles
//	  • Maximum matching: iterate augmenting paths to exhaustion
//
// ✨ Why choose lvlath?
//
//   - Focused      — one algorithm, done completely, not a graph-theory kitchen sink
//   - Rock-solid   — graph/ keeps the same lock-guarded discipline the container it's drawn from used
//   - Transparent  — every package documents its complexity and its invariants
//   - Observable   — opt-in structured logging (zerolog) via functional options
//
// Under the hood, everything is organized under six subpackages:
//
//	graph/    — the minimal Graph capability set the matching core consumes, plus AdjacencyGraph
//	pairing/  — the symmetric vertex↔mate mapping
//	marker/   — visited-vertex/visited-edge bookkeeping for one search
//	forest/   — the alternating-BFS tree/forest with even/odd parity
//	blossom/  — odd-cycle contraction and lifting
//	matching/ — Greedy, AugmentingPath, MaximumMatching
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	Greedy pairs (A,B) and (C,D); MaximumMatching confirms no larger
//	matching of this 4-cycle exists.
//
// See the package-level docs in matching/ for the algorithm's invariants.
//
//	go get github.com/katalvlaran/lvlath
package graph
