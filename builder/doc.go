// Package builder provides deterministic synthetic graph constructors used
// throughout the test and benchmark suites: paths, cycles, complete graphs,
// and the two-triangles-with-a-bridge fixture.
//
// Every constructor creates vertices 1..n in ascending order and emits edges
// in a fixed order, so the resulting graphs are fully reproducible. Weighted
// variants take a WeightFn mapping an (ordered) endpoint pair to a weight,
// keeping weights a pure function of the topology.
package builder
