// Package forest implements the matching core's alternating-BFS forest: a
// collection of rooted trees keyed by parent pointer, with derived path
// reconstruction and even/odd parity. A Forest is created fresh inside every
// augmenting-path search.
//
// Parity follows path length: a root is even (distance 0 from itself), its
// children are odd, their children even, and so on.
package forest

import (
	"errors"

	"github.com/katalvlaran/lvlath/graph"
)

// Sentinel errors for forest operations.
var (
	// ErrMissingVertex indicates a query or add_edge referenced an absent vertex.
	ErrMissingVertex = errors.New("forest: vertex not found")

	// ErrDuplicateVertex indicates add_root or add_edge's child is already present.
	ErrDuplicateVertex = errors.New("forest: vertex already present")
)

// node records one vertex's position in the forest: whether it is a root,
// and if not, its parent. A sentinel VertexID can't stand in for "no parent"
// because 0 is a legitimate id, so the root flag is explicit.
type node struct {
	isRoot bool
	parent graph.VertexID
}

// Forest is a collection of rooted trees over graph.VertexID.
type Forest struct {
	nodes map[graph.VertexID]node
	// order records insertion order (root-add or child-add), making
	// EvenVertices deterministic for a fixed sequence of calls.
	order []graph.VertexID
}

// New creates an empty Forest.
func New() *Forest {
	return &Forest{nodes: make(map[graph.VertexID]node)}
}

// AddRoot inserts v as the root of a new tree.
//
// Fails with ErrDuplicateVertex if v is already present.
func (f *Forest) AddRoot(v graph.VertexID) error {
	if _, ok := f.nodes[v]; ok {
		return ErrDuplicateVertex
	}
	f.nodes[v] = node{isRoot: true}
	f.order = append(f.order, v)

	return nil
}

// AddEdge attaches child as a new tree-edge child of parent.
//
// Fails with ErrMissingVertex if parent is absent, ErrDuplicateVertex if
// child is already present.
func (f *Forest) AddEdge(parent, child graph.VertexID) error {
	if _, ok := f.nodes[parent]; !ok {
		return ErrMissingVertex
	}
	if _, ok := f.nodes[child]; ok {
		return ErrDuplicateVertex
	}
	f.nodes[child] = node{parent: parent}
	f.order = append(f.order, child)

	return nil
}

// Has reports whether v is present in the forest.
func (f *Forest) Has(v graph.VertexID) bool {
	_, ok := f.nodes[v]

	return ok
}

// Path returns the sequence from v's root to v, inclusive.
//
// Fails with ErrMissingVertex if v is absent.
//
// Complexity: O(depth(v)).
func (f *Forest) Path(v graph.VertexID) ([]graph.VertexID, error) {
	n, ok := f.nodes[v]
	if !ok {
		return nil, ErrMissingVertex
	}

	path := []graph.VertexID{v}
	for !n.isRoot {
		parent := n.parent
		path = append(path, parent)
		n = f.nodes[parent]
	}

	// Reverse in place: root..v.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Root returns v's tree root.
//
// Fails with ErrMissingVertex if v is absent.
func (f *Forest) Root(v graph.VertexID) (graph.VertexID, error) {
	path, err := f.Path(v)
	if err != nil {
		return 0, err
	}

	return path[0], nil
}

// IsEven reports whether v's distance to its root is even (roots count as
// even). Fails with ErrMissingVertex if v is absent.
func (f *Forest) IsEven(v graph.VertexID) (bool, error) {
	path, err := f.Path(v)
	if err != nil {
		return false, err
	}

	return (len(path)-1)%2 == 0, nil
}

// IsOdd is the complement of IsEven.
func (f *Forest) IsOdd(v graph.VertexID) (bool, error) {
	even, err := f.IsEven(v)
	if err != nil {
		return false, err
	}

	return !even, nil
}

// EvenVertices returns every currently even vertex, in the order it was
// first inserted into the forest (as a root, or as a child via AddEdge).
//
// Complexity: O(V · depth) worst case; the forest is rebuilt once per search
// and is small in practice (bounded by |V|).
func (f *Forest) EvenVertices() []graph.VertexID {
	var out []graph.VertexID
	for _, v := range f.order {
		even, err := f.IsEven(v)
		if err == nil && even {
			out = append(out, v)
		}
	}

	return out
}
