// Sentinel errors, options, and the Result type for min-cut runs.
package mincut

import (
	"errors"
	"math/rand"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mincut: graph is nil")

	// ErrDirectedGraph is returned for directed inputs; the contraction
	// argument only holds for undirected cuts.
	ErrDirectedGraph = errors.New("mincut: requires an undirected graph")

	// ErrTooFewVertices is returned when the graph has fewer than two
	// vertices, leaving nothing to cut.
	ErrTooFewVertices = errors.New("mincut: need at least two vertices")
)

// Option configures a MinCut run.
type Option func(*Options)

// Options holds configurable parameters for one run.
type Options struct {
	// Trials overrides the number of contraction trials. Zero means the
	// default ⌈n²·ln n⌉ amplification.
	Trials int

	// Seed selects the deterministic random stream. Zero maps to a fixed
	// default seed. Ignored when Rand is set.
	Seed int64

	// Rand, when non-nil, is used as the base generator instead of one
	// built from Seed. It must not be shared with concurrent users.
	Rand *rand.Rand
}

// DefaultOptions returns Options with default amplification and the fixed
// zero-seed stream.
func DefaultOptions() Options { return Options{} }

// WithTrials fixes the number of contraction trials. Values < 1 fall back
// to the default amplification.
func WithTrials(n int) Option {
	return func(o *Options) { o.Trials = n }
}

// WithSeed pins the random stream for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a caller-owned generator, taking precedence over
// WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// Result holds the outcome of an amplified min-cut run.
type Result struct {
	// Cut is the smallest number of crossing edges found over all trials.
	Cut int

	// Trials is the number of contraction trials that were run.
	Trials int
}
