package builder

import (
	"errors"
	"fmt"

	"github.com/amseln/gravl/core"
)

// ErrTooFewVertices indicates a constructor was asked for fewer vertices
// than its shape requires.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// WeightFn produces the weight of the edge (u, v). It must be a pure
// function of its arguments so that generated graphs stay deterministic.
type WeightFn func(u, v core.VertexID) int64

// UnitWeight assigns weight 1 to every edge.
func UnitWeight(_, _ core.VertexID) int64 { return 1 }

// Path builds the path graph 1–2–…–n. Requires n ≥ 1.
// When weightFn is nil the graph is unweighted.
func Path(n int, weightFn WeightFn, opts ...core.GraphOption) (*core.Graph, error) {
	g, err := withVertices(n, 1, weightFn, opts)
	if err != nil {
		return nil, err
	}
	for i := int64(1); i < int64(n); i++ {
		if err = addEdge(g, i, i+1, weightFn); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the cycle graph 1–2–…–n–1. Requires n ≥ 3.
func Cycle(n int, weightFn WeightFn, opts ...core.GraphOption) (*core.Graph, error) {
	g, err := withVertices(n, 3, weightFn, opts)
	if err != nil {
		return nil, err
	}
	for i := int64(1); i <= int64(n); i++ {
		next := i%int64(n) + 1
		if err = addEdge(g, i, next, weightFn); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n on vertices 1..n, emitting each
// unordered pair {i,j} with i < j exactly once. Requires n ≥ 1.
func Complete(n int, weightFn WeightFn, opts ...core.GraphOption) (*core.Graph, error) {
	g, err := withVertices(n, 1, weightFn, opts)
	if err != nil {
		return nil, err
	}
	for i := int64(1); i <= int64(n); i++ {
		for j := i + 1; j <= int64(n); j++ {
			if err = addEdge(g, i, j, weightFn); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// TwoTriangles builds the classic bridge fixture: triangles {1,2,3} and
// {4,5,6} joined by the single edge 3–4. Its minimum cut is 1 and the hop
// distance from 1 to 6 is 3.
func TwoTriangles(opts ...core.GraphOption) *core.Graph {
	g := core.NewGraph(opts...)
	for id := core.VertexID(1); id <= 6; id++ {
		// IDs 1..6 are fresh on an empty graph; insertion cannot fail.
		_ = g.AddVertex(id)
	}
	pairs := [][2]core.VertexID{
		{1, 2}, {2, 3}, {1, 3},
		{4, 5}, {5, 6}, {4, 6},
		{3, 4},
	}
	for _, p := range pairs {
		_, _ = g.AddEdge(p[0], p[1], 0)
	}

	return g
}

// withVertices creates the base graph with vertices 1..n, inferring the
// weighted flag from weightFn.
func withVertices(n, min int, weightFn WeightFn, opts []core.GraphOption) (*core.Graph, error) {
	if n < min {
		return nil, fmt.Errorf("builder: n=%d < min=%d: %w", n, min, ErrTooFewVertices)
	}
	if weightFn != nil {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for i := int64(1); i <= int64(n); i++ {
		if err := g.AddVertex(i); err != nil {
			return nil, fmt.Errorf("builder: AddVertex(%d): %w", i, err)
		}
	}

	return g, nil
}

// addEdge inserts one edge, weighting it when a WeightFn is configured.
func addEdge(g *core.Graph, u, v core.VertexID, weightFn WeightFn) error {
	var w int64
	if weightFn != nil {
		w = weightFn(u, v)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("builder: AddEdge(%d,%d): %w", u, v, err)
	}

	return nil
}
