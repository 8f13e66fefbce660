package mst

import (
	"sort"

	"github.com/amseln/gravl/core"
)

// Kruskal computes a minimum spanning forest by scanning edges in
// ascending weight order and accepting each edge that joins two different
// union-find groups.
//
// A disconnected graph is not an error: the scan simply leaves one tree
// per component, and Result.Trees reports how many. Parallel edges sort
// next to each other and only the cheapest of a bundle can be accepted.
// Ties are broken by insertion order (stable sort over graph.Edges()),
// keeping the output deterministic.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(g *core.Graph, _ ...Option) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	res := &Result{Edges: []core.Edge{}}
	if len(vertices) == 0 {
		return res, nil
	}

	edges := make([]*core.Edge, len(g.Edges()))
	copy(edges, g.Edges())
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	uf := NewUnionFind(vertices)
	for _, e := range edges {
		if !uf.Union(e.From, e.To) {
			// Endpoints already connected; this edge would close a cycle.
			continue
		}
		res.Edges = append(res.Edges, *e)
		res.TotalWeight += e.Weight
		if uf.Groups() == 1 {
			break
		}
	}
	res.Trees = uf.Groups()

	return res, nil
}

// validate rejects nil, directed, and unweighted graphs.
func validate(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.Directed() || !g.Weighted() {
		return ErrInvalidGraph
	}

	return nil
}
