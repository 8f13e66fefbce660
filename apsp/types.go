// Sentinel errors and the Result type for all-pairs runs.
package apsp

import (
	"errors"
	"math"
	"sort"

	"github.com/amseln/gravl/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("apsp: graph is nil")

	// ErrUnweightedGraph is returned when the graph carries no weights.
	ErrUnweightedGraph = errors.New("apsp: graph is not weighted")

	// ErrNegativeCycle is returned when the graph contains a cycle of
	// negative total weight, which leaves shortest paths undefined.
	ErrNegativeCycle = errors.New("apsp: negative-weight cycle detected")

	// ErrVertexNotFound is returned by ID-based lookups for unknown IDs.
	ErrVertexNotFound = errors.New("apsp: vertex not found")
)

// Result is a dense all-pairs distance matrix plus the vertex-ID ↔ index
// mapping. Distances are float64 with math.Inf(1) meaning "no path".
type Result struct {
	// IDs lists the vertex IDs in ascending order; IDs[i] labels row and
	// column i of the matrix.
	IDs []core.VertexID

	dist []float64 // flat row-major n×n buffer
	n    int
}

// Dist returns the shortest distance from row index i to column index j.
// Indexes follow the IDs slice. Out-of-range indexes return +Inf.
func (r *Result) Dist(i, j int) float64 {
	if i < 0 || j < 0 || i >= r.n || j >= r.n {
		return math.Inf(1)
	}

	return r.dist[i*r.n+j]
}

// DistByID returns the shortest distance between two vertices by ID.
func (r *Result) DistByID(u, v core.VertexID) (float64, error) {
	i, ok := r.IndexOf(u)
	if !ok {
		return 0, ErrVertexNotFound
	}
	j, ok := r.IndexOf(v)
	if !ok {
		return 0, ErrVertexNotFound
	}

	return r.dist[i*r.n+j], nil
}

// IndexOf resolves a vertex ID to its matrix index via binary search over
// the sorted IDs slice.
func (r *Result) IndexOf(id core.VertexID) (int, bool) {
	i := sort.Search(len(r.IDs), func(k int) bool { return r.IDs[k] >= id })
	if i < len(r.IDs) && r.IDs[i] == id {
		return i, true
	}

	return 0, false
}

// Reachable reports whether any path leads from u to v.
func (r *Result) Reachable(u, v core.VertexID) bool {
	d, err := r.DistByID(u, v)

	return err == nil && !math.IsInf(d, 1)
}
