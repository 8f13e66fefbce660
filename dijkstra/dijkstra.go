package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/amseln/gravl/core"
)

// Dijkstra computes shortest distances from src to every vertex in the
// weighted graph g.
//
// Validation, in order: g non-nil (ErrGraphNil), g weighted
// (ErrUnweightedGraph), src present (ErrVertexNotFound). Negative weights
// are not checked; see the package documentation.
//
// The run resets the graph's transient exploration state on entry and
// records each finalized distance both in Result.Dist and on the vertex
// itself (Vertex.Dist, Vertex.Explored). Ties between equal-distance
// vertices are broken arbitrarily.
func Dijkstra(g *core.Graph, src core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(src) {
		return nil, ErrVertexNotFound
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g.ClearExplorationState()

	r := newRunner(g, cfg, src)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g   *core.Graph
	res *Result
	pq  nodePQ
}

// newRunner initializes distances to the infinity sentinel, seeds the
// source at 0, and pushes it onto the heap.
func newRunner(g *core.Graph, cfg Options, src core.VertexID) *runner {
	vertices := g.Vertices()
	r := &runner{
		g: g,
		res: &Result{
			Dist: make(map[core.VertexID]int64, len(vertices)),
		},
		pq: make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnParents {
		r.res.Parent = make(map[core.VertexID]core.VertexID, len(vertices))
	}

	for _, v := range vertices {
		r.res.Dist[v] = core.InfDist
	}
	r.res.Dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})

	return r
}

// process repeatedly extracts the minimum-distance vertex, finalizes it,
// and relaxes its outgoing edges. Stale heap entries (already-finalized
// vertices) are skipped on pop: the lazy-decrease-key pattern.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, err := r.g.Vertex(item.id)
		if err != nil {
			return fmt.Errorf("dijkstra: vertex %d: %w", item.id, err)
		}
		if u.Explored {
			continue
		}

		// Finalize: item.dist is the true shortest distance to u.
		u.Explored = true
		u.Dist = item.dist

		if err = r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the tentative distances of u's unfinalized neighbors and
// pushes updated entries onto the heap.
func (r *runner) relax(uid core.VertexID, base int64) error {
	edges, err := r.g.Neighbors(uid)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", uid, err)
	}

	for _, e := range edges {
		vid := e.Other(uid)
		cand := base + e.Weight

		// Strict improvement only; equal candidates would just add
		// duplicate heap entries.
		if cand >= r.res.Dist[vid] {
			continue
		}

		r.res.Dist[vid] = cand
		if r.res.Parent != nil {
			r.res.Parent[vid] = uid
		}
		heap.Push(&r.pq, &nodeItem{id: vid, dist: cand})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and its tentative distance.
type nodeItem struct {
	id   core.VertexID
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
