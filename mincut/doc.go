// Package mincut implements Karger's randomized contraction algorithm for
// the global minimum cut of an undirected graph.
//
// A single contraction trial repeatedly picks a uniformly random edge and
// merges its endpoints, deleting the edges between them, until two
// super-vertices remain; the surviving parallel edges form a cut. One
// trial finds a minimum cut only with probability ≥ 2/n², so MinCut
// amplifies: it runs ⌈n²·ln n⌉ independent trials (overridable via
// WithTrials) on clones of the input and keeps the best cut seen. The
// input graph is never modified by MinCut; Contract is the destructive
// single-trial primitive for callers driving trials themselves.
//
// Randomness is deterministic by default: the zero seed maps to a fixed
// stream, WithSeed pins any other stream, and WithRand injects a caller's
// generator outright. Per-trial substreams are derived with a
// SplitMix64-style mix so trials stay decorrelated. No time-based seeding
// anywhere.
//
// A disconnected input contracts each component independently and ends
// with zero crossing edges, so its minimum cut is reported as 0.
//
// Complexity: O(V·E) per trial, O(V³·E·ln V) for the default amplification.
package mincut
