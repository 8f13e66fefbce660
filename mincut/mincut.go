package mincut

import (
	"math"

	"github.com/amseln/gravl/core"
)

// MinCut estimates the global minimum cut of the undirected graph g by
// amplified random contraction: it runs independent Contract trials on
// clones of g and keeps the smallest cut seen. The input graph is left
// untouched.
//
// The default trial count is ⌈n²·ln n⌉, which bounds the failure
// probability by 1/n. WithTrials trades accuracy for speed; WithSeed and
// WithRand control the random stream (deterministic by default).
//
// Complexity: O(T·V·E) time for T trials.
func MinCut(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if g.VertexCount() < 2 {
		return nil, ErrTooFewVertices
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	trials := cfg.Trials
	if trials < 1 {
		trials = defaultTrials(g.VertexCount())
	}
	base := cfg.Rand
	if base == nil {
		base = rngFromSeed(cfg.Seed)
	}

	res := &Result{Cut: math.MaxInt}
	for trial := 0; trial < trials; trial++ {
		cut, err := Contract(g.Clone(), deriveRNG(base, uint64(trial)))
		if err != nil {
			return nil, err
		}
		res.Trials++
		if cut < res.Cut {
			res.Cut = cut
		}
		if res.Cut == 0 {
			// Disconnected: no later trial can beat zero.
			break
		}
	}

	return res, nil
}

// defaultTrials returns ⌈n²·ln n⌉, the amplification that brings the
// failure probability down to at most 1/n.
func defaultTrials(n int) int {
	if n < 2 {
		return 1
	}

	return int(math.Ceil(float64(n) * float64(n) * math.Log(float64(n))))
}
