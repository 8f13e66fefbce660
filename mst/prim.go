package mst

import (
	"container/heap"
	"fmt"

	"github.com/amseln/gravl/core"
)

// Prim computes a minimum spanning forest by growing trees outward with a
// binary min-heap of frontier edges.
//
// The first tree grows from Options.Root when set (core.ErrVertexNotFound
// if absent), otherwise from the smallest vertex ID. When the heap drains
// with unreached vertices left, Prim restarts at the smallest unreached ID
// and grows the next tree, so a disconnected graph yields a forest rather
// than an error. On a connected graph the total weight matches Kruskal's.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := g.Vertices()
	res := &Result{Edges: []core.Edge{}}
	if len(vertices) == 0 {
		return res, nil
	}

	roots := make([]core.VertexID, 0, len(vertices))
	if cfg.Root != nil {
		if !g.HasVertex(*cfg.Root) {
			return nil, fmt.Errorf("mst: root %d: %w", *cfg.Root, core.ErrVertexNotFound)
		}
		roots = append(roots, *cfg.Root)
	}
	// Fallback seeds for further components, in ascending ID order. Seeds
	// already inside a grown tree are skipped below.
	roots = append(roots, vertices...)

	inTree := make(map[core.VertexID]bool, len(vertices))
	pq := &frontierPQ{}
	heap.Init(pq)

	for _, root := range roots {
		if inTree[root] {
			continue
		}
		res.Trees++
		inTree[root] = true
		if err := pushFrontier(g, pq, inTree, root); err != nil {
			return nil, err
		}

		for pq.Len() > 0 {
			e := heap.Pop(pq).(*core.Edge)
			v := e.Other(frontierAnchor(e, inTree))
			if inTree[v] {
				continue
			}
			inTree[v] = true
			res.Edges = append(res.Edges, *e)
			res.TotalWeight += e.Weight
			if err := pushFrontier(g, pq, inTree, v); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// frontierAnchor returns the endpoint of e that is already inside the
// growing tree. At least one endpoint always is, because edges enter the
// heap only from tree vertices.
func frontierAnchor(e *core.Edge, inTree map[core.VertexID]bool) core.VertexID {
	if inTree[e.From] {
		return e.From
	}

	return e.To
}

// pushFrontier adds every edge from u to a not-yet-reached vertex onto the
// heap.
func pushFrontier(g *core.Graph, pq *frontierPQ, inTree map[core.VertexID]bool, u core.VertexID) error {
	edges, err := g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("mst: neighbors of %d: %w", u, err)
	}
	for _, e := range edges {
		if !inTree[e.Other(u)] {
			heap.Push(pq, e)
		}
	}

	return nil
}

// frontierPQ is a min-heap of *core.Edge ordered by Weight ascending.
type frontierPQ []*core.Edge

func (pq frontierPQ) Len() int            { return len(pq) }
func (pq frontierPQ) Less(i, j int) bool  { return pq[i].Weight < pq[j].Weight }
func (pq frontierPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*core.Edge)) }

func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
