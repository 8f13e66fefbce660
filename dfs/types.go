// Types and options for depth-first traversal: cancellation, pre-/post-order
// hooks, forest mode, and the Result collector.
package dfs

import (
	"context"
	"errors"

	"github.com/amseln/gravl/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates the start vertex does not exist.
	ErrVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id core.VertexID) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order). Returning an error aborts traversal.
	OnExit func(id core.VertexID) error

	// FullTraversal, if true, restarts DFS from every unexplored vertex in
	// ascending ID order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks, and
// single-source traversal.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context for DFS traversal; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.VertexID) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id core.VertexID) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in discovery (pre-order) sequence.
	Order []core.VertexID

	// Parent maps each vertex to the vertex it was first discovered from.
	// Roots of DFS trees do not appear as keys.
	Parent map[core.VertexID]core.VertexID

	// Visited flags which vertices were reached during the traversal.
	Visited map[core.VertexID]bool

	// Trees counts the DFS trees grown (1 for a single-source run on a
	// connected input; one per component under WithFullTraversal).
	Trees int
}
