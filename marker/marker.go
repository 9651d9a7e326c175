// Package marker implements the matching core's per-search scratch memory:
// a set of marked vertices and a set of marked undirected edges. A Marker is
// created fresh inside every augmenting-path search and discarded on return.
//
// Marking is idempotent: marking an already-marked vertex or edge is a no-op,
// not an error.
package marker

import "github.com/katalvlaran/lvlath/graph"

// edgeKey canonicalizes an undirected edge so (u,v) and (v,u) hash alike.
type edgeKey struct {
	a, b graph.VertexID
}

func canonical(u, v graph.VertexID) edgeKey {
	if u > v {
		u, v = v, u
	}

	return edgeKey{a: u, b: v}
}

// Marker tracks visited vertices and examined edges for one search.
type Marker struct {
	vertices map[graph.VertexID]struct{}
	edges    map[edgeKey]struct{}
}

// New creates an empty Marker.
func New() *Marker {
	return &Marker{
		vertices: make(map[graph.VertexID]struct{}),
		edges:    make(map[edgeKey]struct{}),
	}
}

// MarkVertex marks v. Idempotent.
func (m *Marker) MarkVertex(v graph.VertexID) {
	m.vertices[v] = struct{}{}
}

// HasVertex reports whether v is marked.
func (m *Marker) HasVertex(v graph.VertexID) bool {
	_, ok := m.vertices[v]

	return ok
}

// MarkEdge marks the undirected edge (u,v). Idempotent; marking (u,v) implies
// (v,u) is marked.
func (m *Marker) MarkEdge(u, v graph.VertexID) {
	m.edges[canonical(u, v)] = struct{}{}
}

// HasEdge reports whether the undirected edge (u,v) is marked.
func (m *Marker) HasEdge(u, v graph.VertexID) bool {
	_, ok := m.edges[canonical(u, v)]

	return ok
}
