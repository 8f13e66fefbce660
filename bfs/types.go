// Tunable options, sentinel errors, and the Result type for breadth-first
// search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/amseln/gravl/core"
)

// Unreachable is the hop-count sentinel returned when the destination is
// never dequeued. It is a result value, not an error.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexNotFound is returned when the source or destination vertex
	// is absent from the graph.
	ErrVertexNotFound = errors.New("bfs: vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued for visiting. If it
	// returns an error, BFS aborts and propagates that error.
	OnVisit func(id core.VertexID, layer int) error

	// MaxLayer, if > 0, stops exploring beyond this layer.
	// A value of 0 disables any layer limit.
	MaxLayer int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor core.VertexID) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no layer limit, no filtering, a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(core.VertexID, int) error { return nil },
		MaxLayer:       0,
		FilterNeighbor: func(_, _ core.VertexID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on every visit; returning an
// error from the callback stops the traversal.
func WithOnVisit(fn func(id core.VertexID, layer int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxLayer stops the search beyond the given layer.
//
//	l > 0:  limit to layer l
//	l == 0: explicit no limit
//	l < 0:  invalid option → ErrOptionViolation
func WithMaxLayer(l int) Option {
	return func(o *Options) {
		switch {
		case l < 0:
			o.err = fmt.Errorf("%w: MaxLayer cannot be negative (%d)", ErrOptionViolation, l)
		default:
			o.MaxLayer = l
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.VertexID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in discovery order, source first.
//   - Layer: vertex ID → hop distance from the source.
//   - Parent: vertex ID → predecessor in the BFS tree (absent for the source).
type Result struct {
	Order  []core.VertexID
	Layer  map[core.VertexID]int
	Parent map[core.VertexID]core.VertexID
}

// PathTo reconstructs a hop-optimal path from the source to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.VertexID) ([]core.VertexID, error) {
	if _, ok := r.Layer[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// Walk parent links back to the source, then reverse.
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

	return path, nil
}
