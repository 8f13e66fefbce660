// Sentinel errors, options, and the Result type shared by Prim and Kruskal.
package mst

import (
	"errors"

	"github.com/amseln/gravl/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrInvalidGraph is returned when the graph is directed or unweighted;
	// spanning trees are defined on undirected weighted graphs only.
	ErrInvalidGraph = errors.New("mst: requires an undirected, weighted graph")
)

// Option configures an MST run.
type Option func(*Options)

// Options holds configurable parameters for one run.
type Options struct {
	// Root is the vertex Prim starts growing from. When unset (nil), Prim
	// starts at the smallest vertex ID. Kruskal ignores it.
	Root *core.VertexID
}

// DefaultOptions returns Options with no explicit root.
func DefaultOptions() Options { return Options{} }

// WithRoot fixes Prim's starting vertex. The vertex must exist, otherwise
// Prim returns core.ErrVertexNotFound.
func WithRoot(id core.VertexID) Option {
	return func(o *Options) { o.Root = &id }
}

// Result holds a minimum spanning forest.
type Result struct {
	// Edges are the chosen forest edges, in the order the algorithm
	// accepted them.
	Edges []core.Edge

	// TotalWeight is the sum of the chosen edges' weights.
	TotalWeight int64

	// Trees is the number of trees in the forest: 1 for a connected
	// graph, one per component otherwise, 0 for the empty graph.
	Trees int
}

// Spanning reports whether the forest is a single spanning tree, i.e. the
// input graph was connected and non-empty.
func (r *Result) Spanning() bool { return r.Trees == 1 }
