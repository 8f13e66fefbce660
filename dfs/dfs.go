package dfs

import (
	"fmt"

	"github.com/amseln/gravl/core"
)

// walker encapsulates state during one DFS run.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g. In single-source mode it starts from
// src; with WithFullTraversal it covers every component in ascending vertex
// ID order and src is ignored.
//
// The run resets the graph's exploration state on entry and marks
// Vertex.Explored pre-order. Returns the Result, or an error from input
// validation, cancellation, or a user hook.
func DFS(g *core.Graph, src core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(src) {
		return nil, ErrVertexNotFound
	}

	g.ClearExplorationState()

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:   make([]core.VertexID, 0, n),
			Parent:  make(map[core.VertexID]core.VertexID, n),
			Visited: make(map[core.VertexID]bool, n),
		},
	}

	if o.FullTraversal {
		for _, id := range g.Vertices() {
			if w.res.Visited[id] {
				continue
			}
			w.res.Trees++
			if err := w.traverse(id); err != nil {
				return w.res, err
			}
		}

		return w.res, nil
	}

	w.res.Trees = 1
	if err := w.traverse(src); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// traverse visits id and recurses into its unexplored neighbors (LIFO by
// recursion). It honors context cancellation and both hooks.
func (w *walker) traverse(id core.VertexID) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Order = append(w.res.Order, id)
	if v, err := w.graph.Vertex(id); err == nil {
		v.Explored = true
	}

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	edges, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", id, err)
	}
	for _, e := range edges {
		nid := e.Other(id)
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	return nil
}

// Components counts connected components by full-forest DFS. An empty graph
// has 0 components. The count agrees with bfs.Components on every graph.
//
// Errors: ErrGraphNil.
func Components(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return 0, nil
	}

	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return 0, err
	}

	return res.Trees, nil
}
