package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amseln/gravl/core"
)

// TestAddVertex_DuplicateRejected verifies strict vertex-ID uniqueness.
func TestAddVertex_DuplicateRejected(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertex(1))
	assert.True(t, g.HasVertex(1))
	assert.Equal(t, 1, g.VertexCount())

	// Second insertion of the same ID must fail and change nothing.
	assert.ErrorIs(t, g.AddVertex(1), core.ErrDuplicateVertex)
	assert.Equal(t, 1, g.VertexCount())
}

// TestAddEdge_Validation verifies the AddEdge error taxonomy and that no
// partial mutation happens on failure.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))

	// Self-loops are rejected unconditionally.
	_, err := g.AddEdge(1, 1, 0)
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	// Endpoints are never auto-created.
	_, err = g.AddEdge(1, 99, 0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge(99, 2, 0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.Zero(t, g.EdgeCount(), "failed inserts must not leave edges behind")

	// Weight constraint on unweighted graphs.
	gu := core.NewGraph()
	require.NoError(t, gu.AddVertex(1))
	require.NoError(t, gu.AddVertex(2))
	_, err = gu.AddEdge(1, 2, 7)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	assert.Zero(t, gu.EdgeCount())
}

// TestAddEdge_ParallelEdges verifies multigraph semantics: identical edges
// coexist with distinct IDs.
func TestAddEdge_ParallelEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))

	e1, err := g.AddEdge(1, 2, 0)
	require.NoError(t, err)
	e2, err := g.AddEdge(1, 2, 0)
	require.NoError(t, err)

	assert.NotEqual(t, e1, e2)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Len(t, g.EdgesBetween(1, 2), 2)
	// Undirected mirror: visible from the other endpoint too.
	assert.True(t, g.HasEdge(2, 1))
}

// TestRemoveEdge_FirstFound verifies that exactly one edge goes per call,
// oldest first, and that a missing edge is an error.
func TestRemoveEdge_FirstFound(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))

	first, err := g.AddEdge(1, 2, 10)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 20)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(1, 2))
	remaining := g.EdgesBetween(1, 2)
	require.Len(t, remaining, 1)
	assert.NotEqual(t, first, remaining[0].ID, "oldest edge must be removed first")
	assert.Equal(t, int64(20), remaining[0].Weight)

	// Orientation-insensitive match in undirected graphs.
	require.NoError(t, g.RemoveEdge(2, 1))
	assert.ErrorIs(t, g.RemoveEdge(1, 2), core.ErrEdgeNotFound)
}

// TestRemoveAllEdgesBetween verifies the bulk removal contract and count.
func TestRemoveAllEdgesBetween(t *testing.T) {
	g := core.NewGraph()
	for id := core.VertexID(1); id <= 3; id++ {
		require.NoError(t, g.AddVertex(id))
	}
	for i := 0; i < 3; i++ {
		_, err := g.AddEdge(1, 2, 0)
		require.NoError(t, err)
	}
	_, err := g.AddEdge(2, 3, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, g.RemoveAllEdgesBetween(1, 2))
	assert.False(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 3), "unrelated edges must survive")

	// Zero matches is not an error.
	assert.Zero(t, g.RemoveAllEdgesBetween(1, 2))
}

// TestRemoveVertex_Cascade verifies incident-edge cascade on removal.
func TestRemoveVertex_Cascade(t *testing.T) {
	g := core.NewGraph()
	for id := core.VertexID(1); id <= 3; id++ {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge(1, 2, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 3, 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(2))

	assert.False(t, g.HasVertex(2))
	assert.Equal(t, 1, g.EdgeCount(), "only the 1–3 edge survives")
	assert.True(t, g.HasEdge(1, 3))

	assert.ErrorIs(t, g.RemoveVertex(2), core.ErrVertexNotFound)
}

// TestDirectedAdjacency verifies the outgoing-only neighborhood policy.
func TestDirectedAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))
	_, err := g.AddEdge(1, 2, 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1), "directed edges are not mirrored")

	out, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	in, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Empty(t, in, "incoming edges are not neighbors")

	_, err = g.Neighbors(99)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestEnumerationOrder verifies the deterministic ordering contracts that
// the algorithm packages rely on.
func TestEnumerationOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.VertexID{42, 7, 19, 3} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []core.VertexID{3, 7, 19, 42}, g.Vertices())

	// Insert more than nine edges so that numeric ID order and lexical
	// order diverge ("e10" vs "e2"); insertion order must win.
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge(3, 7, 0)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 11)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, "e11", edges[10].ID)

	ids, err := g.NeighborIDs(3)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{7}, ids, "parallel edges report one neighbor")
}

// TestClearExplorationState verifies the reset contract and its idempotence.
func TestClearExplorationState(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1))

	v, err := g.Vertex(1)
	require.NoError(t, err)
	assert.False(t, v.Explored)
	assert.Equal(t, core.UnsetLayer, v.Layer)
	assert.Equal(t, core.InfDist, v.Dist)

	// Simulate an algorithm having run.
	v.Explored = true
	v.Layer = 4
	v.Dist = 17

	g.ClearExplorationState()
	assert.False(t, v.Explored)
	assert.Equal(t, core.UnsetLayer, v.Layer)
	assert.Equal(t, core.InfDist, v.Dist)

	// Idempotence: a second call is a no-op equivalent to one call.
	g.ClearExplorationState()
	assert.False(t, v.Explored)
	assert.Equal(t, core.UnsetLayer, v.Layer)
	assert.Equal(t, core.InfDist, v.Dist)
}

// TestClone_Independence verifies deep-copy semantics.
func TestClone_Independence(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))
	_, err := g.AddEdge(1, 2, 5)
	require.NoError(t, err)

	c := g.Clone()
	require.Equal(t, g.VertexCount(), c.VertexCount())
	require.Equal(t, g.EdgeCount(), c.EdgeCount())
	assert.Equal(t, g.Weighted(), c.Weighted())

	// Mutating the clone must not touch the original.
	require.NoError(t, c.RemoveVertex(2))
	assert.True(t, g.HasVertex(2))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Zero(t, c.EdgeCount())

	// Fresh edge IDs on the clone cannot collide with copied ones.
	require.NoError(t, c.AddVertex(3))
	eid, err := c.AddEdge(1, 3, 2)
	require.NoError(t, err)
	assert.NotEqual(t, "e1", eid)
}
