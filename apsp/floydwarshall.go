package apsp

import (
	"math"

	"github.com/amseln/gravl/core"
)

// FloydWarshall computes shortest distances between every ordered pair of
// vertices in the weighted graph g.
//
// Undirected edges contribute both orientations; parallel edges contribute
// their minimum weight. Negative edge weights are fine, but a negative
// cycle aborts the run with ErrNegativeCycle. The empty graph yields an
// empty (but valid) Result.
//
// Complexity: O(V³) time, O(V²) memory.
func FloydWarshall(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	res := initDistances(g)
	closeDistances(res)

	// A negative diagonal entry means some vertex reaches itself at
	// negative cost: a negative cycle.
	for i := 0; i < res.n; i++ {
		if res.dist[i*res.n+i] < 0 {
			return nil, ErrNegativeCycle
		}
	}

	return res, nil
}

// initDistances densifies g: diagonal 0, +Inf off-diagonal, then each edge
// lowers its cell (and the mirror cell when undirected). Rows follow the
// ascending vertex-ID order of g.Vertices().
func initDistances(g *core.Graph) *Result {
	ids := g.Vertices()
	n := len(ids)
	res := &Result{IDs: ids, dist: make([]float64, n*n), n: n}

	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				res.dist[i*n+j] = inf
			}
		}
	}

	for _, e := range g.Edges() {
		i, _ := res.IndexOf(e.From)
		j, _ := res.IndexOf(e.To)
		w := float64(e.Weight)
		if w < res.dist[i*n+j] {
			res.dist[i*n+j] = w
		}
		if !e.Directed && w < res.dist[j*n+i] {
			res.dist[j*n+i] = w
		}
	}

	return res
}

// closeDistances runs the triple loop in place. The k → i → j order is
// fixed so equal-weight alternatives always resolve the same way.
func closeDistances(res *Result) {
	n := res.n
	data := res.dist

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				// i cannot reach k; no path via k can improve row i.
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
