package forest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/forest"
	"github.com/katalvlaran/lvlath/graph"
)

func TestAddRootAndDuplicate(t *testing.T) {
	f := forest.New()
	require.NoError(t, f.AddRoot(0))
	require.ErrorIs(t, f.AddRoot(0), forest.ErrDuplicateVertex)
}

func TestAddEdgeRequiresParent(t *testing.T) {
	f := forest.New()
	require.ErrorIs(t, f.AddEdge(0, 1), forest.ErrMissingVertex)

	require.NoError(t, f.AddRoot(0))
	require.NoError(t, f.AddEdge(0, 1))
	require.ErrorIs(t, f.AddEdge(0, 1), forest.ErrDuplicateVertex)
}

// TestPathAndParity builds 0(root)-1-2-3-4 and checks path/parity, mirroring
// forest.rs's c5_from_root table test.
func TestPathAndParity(t *testing.T) {
	f := forest.New()
	require.NoError(t, f.AddRoot(0))
	require.NoError(t, f.AddEdge(0, 1))
	require.NoError(t, f.AddEdge(1, 2))
	require.NoError(t, f.AddEdge(2, 3))
	require.NoError(t, f.AddEdge(3, 4))

	path, err := f.Path(4)
	require.NoError(t, err)
	require.Equal(t, []graph.VertexID{0, 1, 2, 3, 4}, path)

	root, err := f.Root(4)
	require.NoError(t, err)
	require.Equal(t, graph.VertexID(0), root)

	even, err := f.IsEven(0)
	require.NoError(t, err)
	require.True(t, even)

	odd, err := f.IsOdd(1)
	require.NoError(t, err)
	require.True(t, odd)

	even, err = f.IsEven(4)
	require.NoError(t, err)
	require.True(t, even)
}

func TestPathMissingVertex(t *testing.T) {
	f := forest.New()
	_, err := f.Path(7)
	require.ErrorIs(t, err, forest.ErrMissingVertex)
}

func TestEvenVerticesInInsertionOrder(t *testing.T) {
	f := forest.New()
	require.NoError(t, f.AddRoot(10))
	require.NoError(t, f.AddRoot(20))
	require.NoError(t, f.AddEdge(10, 11))
	require.NoError(t, f.AddEdge(11, 12))

	require.Equal(t, []graph.VertexID{10, 20, 12}, f.EvenVertices())
}
