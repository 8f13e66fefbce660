package mincut_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amseln/gravl/builder"
	"github.com/amseln/gravl/core"
	"github.com/amseln/gravl/mincut"
)

func TestValidation(t *testing.T) {
	_, err := mincut.MinCut(nil)
	assert.ErrorIs(t, err, mincut.ErrGraphNil)
	_, err = mincut.Contract(nil, nil)
	assert.ErrorIs(t, err, mincut.ErrGraphNil)

	directed := core.NewGraph(core.WithDirected(true))
	_, err = mincut.MinCut(directed)
	assert.ErrorIs(t, err, mincut.ErrDirectedGraph)

	single := core.NewGraph()
	require.NoError(t, single.AddVertex(1))
	_, err = mincut.MinCut(single)
	assert.ErrorIs(t, err, mincut.ErrTooFewVertices)
}

// On a two-vertex graph Contract has nothing to merge: the cut is exactly
// the parallel-edge bundle.
func TestContract_TwoVertices(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))
	for i := 0; i < 3; i++ {
		_, err := g.AddEdge(1, 2, 0)
		require.NoError(t, err)
	}

	cut, err := mincut.Contract(g, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, cut)
}

// Contracting a tree always ends with a single crossing edge, whichever
// edges the stream picks, and the input graph is consumed in the process.
func TestContract_PathIsDestructive(t *testing.T) {
	g, err := builder.Path(5, nil)
	require.NoError(t, err)

	cut, err := mincut.Contract(g, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, 1, cut)
	assert.Equal(t, 2, g.VertexCount(), "Contract works in place")
}

// A cycle stays a cycle under contraction, so every trial returns exactly
// 2, even a single one.
func TestMinCut_Cycle(t *testing.T) {
	g, err := builder.Cycle(6, nil)
	require.NoError(t, err)

	res, err := mincut.MinCut(g, mincut.WithTrials(1))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cut)
	assert.Equal(t, 1, res.Trials)
}

func TestMinCut_CompleteGraph(t *testing.T) {
	g, err := builder.Complete(4, nil)
	require.NoError(t, err)

	res, err := mincut.MinCut(g)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Cut)
}

// Every single trial on K4 returns a valid cut, so never fewer than the
// true minimum of 3, whatever the stream does.
func TestContract_CompleteGraphLowerBound(t *testing.T) {
	g, err := builder.Complete(4, nil)
	require.NoError(t, err)

	for seed := int64(1); seed <= 20; seed++ {
		cut, err := mincut.Contract(g.Clone(), rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cut, 3, "seed %d", seed)
	}
}

func TestMinCut_BridgeAndInputUntouched(t *testing.T) {
	g := builder.TwoTriangles()
	edgesBefore := g.EdgeCount()
	verticesBefore := g.VertexCount()

	res, err := mincut.MinCut(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Cut, "the 3-4 bridge is the minimum cut")

	assert.Equal(t, edgesBefore, g.EdgeCount(), "MinCut must not mutate its input")
	assert.Equal(t, verticesBefore, g.VertexCount())
}

func TestMinCut_DisconnectedIsZero(t *testing.T) {
	g := core.NewGraph()
	for id := core.VertexID(1); id <= 4; id++ {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge(1, 2, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(3, 4, 0)
	require.NoError(t, err)

	res, err := mincut.MinCut(g)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cut)
	assert.Equal(t, 1, res.Trials, "a zero cut ends amplification early")
}

func TestMinCut_Deterministic(t *testing.T) {
	g := builder.TwoTriangles()

	a, err := mincut.MinCut(g, mincut.WithSeed(7), mincut.WithTrials(5))
	require.NoError(t, err)
	b, err := mincut.MinCut(g, mincut.WithSeed(7), mincut.WithTrials(5))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same result")
}

func TestMinCut_WithRand(t *testing.T) {
	g, err := builder.Cycle(5, nil)
	require.NoError(t, err)

	res, err := mincut.MinCut(g, mincut.WithRand(rand.New(rand.NewSource(99))), mincut.WithTrials(3))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cut)
	assert.Equal(t, 3, res.Trials)
}
