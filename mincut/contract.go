package mincut

import (
	"fmt"
	"math/rand"

	"github.com/amseln/gravl/core"
)

// Contract runs one contraction trial, DESTRUCTIVELY, on g: it repeatedly
// picks a uniformly random edge, merges its endpoints into one
// super-vertex, and deletes the edges between them, until at most two
// vertices remain. The return value is the number of surviving edges: the
// size of the cut this trial found, which is an upper bound on the true
// minimum cut.
//
// A nil rng falls back to the deterministic zero-seed stream. If the graph
// runs out of edges before reaching two vertices it is disconnected and
// the crossing count is 0.
//
// Callers wanting to keep g intact should pass g.Clone(); MinCut does
// exactly that per trial.
//
// Complexity: O(V·E) time.
func Contract(g *core.Graph, rng *rand.Rand) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.Directed() {
		return 0, ErrDirectedGraph
	}
	if g.VertexCount() < 2 {
		return 0, ErrTooFewVertices
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	for g.VertexCount() > 2 {
		edges := g.Edges()
		if len(edges) == 0 {
			// Disconnected remainder: no edge can ever cross.
			return 0, nil
		}
		e := edges[rng.Intn(len(edges))]
		if err := merge(g, e.From, e.To); err != nil {
			return 0, err
		}
	}

	return g.EdgeCount(), nil
}

// merge folds vertex v into vertex u: edges between the pair disappear
// (they would become self-loops), every other edge incident to v is
// re-pointed at u, and v is removed.
func merge(g *core.Graph, u, v core.VertexID) error {
	g.RemoveAllEdgesBetween(u, v)

	incident, err := g.Neighbors(v)
	if err != nil {
		return fmt.Errorf("mincut: neighbors of %d: %w", v, err)
	}
	for _, e := range incident {
		if _, err = g.AddEdge(u, e.Other(v), e.Weight); err != nil {
			return fmt.Errorf("mincut: re-point edge %s: %w", e.ID, err)
		}
	}

	// Cascades away the originals that were just re-pointed.
	if err = g.RemoveVertex(v); err != nil {
		return fmt.Errorf("mincut: remove %d: %w", v, err)
	}

	return nil
}
