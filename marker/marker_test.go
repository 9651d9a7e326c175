package marker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/marker"
)

func TestMarkVertexIdempotent(t *testing.T) {
	m := marker.New()
	require.False(t, m.HasVertex(1))

	m.MarkVertex(1)
	m.MarkVertex(1)
	require.True(t, m.HasVertex(1))
}

func TestMarkEdgeIsSymmetric(t *testing.T) {
	m := marker.New()
	require.False(t, m.HasEdge(1, 2))

	m.MarkEdge(1, 2)
	require.True(t, m.HasEdge(1, 2))
	require.True(t, m.HasEdge(2, 1))

	// Idempotent from either direction.
	m.MarkEdge(2, 1)
	require.True(t, m.HasEdge(1, 2))
}
