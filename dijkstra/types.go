// Sentinel errors, options, and the Result type for Dijkstra runs.
package dijkstra

import (
	"errors"

	"github.com/amseln/gravl/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph is returned when the graph carries no weights;
	// hop-count distances are BFS territory.
	ErrUnweightedGraph = errors.New("dijkstra: graph is not weighted")

	// ErrVertexNotFound is returned when the source vertex is absent.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found")
)

// Option configures a Dijkstra run.
type Option func(*Options)

// Options holds configurable parameters for one run.
type Options struct {
	// ReturnParents enables predecessor tracking in Result.Parent.
	ReturnParents bool
}

// DefaultOptions returns Options with parent tracking disabled.
func DefaultOptions() Options { return Options{} }

// WithParents enables predecessor tracking; Result.Parent is populated and
// Result.PathTo becomes available.
func WithParents() Option {
	return func(o *Options) { o.ReturnParents = true }
}

// Result holds the outcome of a Dijkstra run.
type Result struct {
	// Dist maps every vertex ID to its shortest distance from the source;
	// unreachable vertices carry core.InfDist.
	Dist map[core.VertexID]int64

	// Parent maps each reached vertex (except the source) to its
	// predecessor on a shortest path. Nil unless WithParents was supplied.
	Parent map[core.VertexID]core.VertexID
}

// PathTo reconstructs a shortest path from the source to dest using the
// parent links. Returns nil if dest is unreachable or parents were not
// requested.
func (r *Result) PathTo(dest core.VertexID) []core.VertexID {
	if r.Parent == nil {
		return nil
	}
	if d, ok := r.Dist[dest]; !ok || d == core.InfDist {
		return nil
	}
	var path []core.VertexID
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
