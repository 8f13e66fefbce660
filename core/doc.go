// Package core provides the fundamental in-memory Graph implementation:
// a mutable adjacency-list multigraph with strict structural invariants.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges between the same endpoints (always permitted)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//
// Self-loops are never permitted: AddEdge(v, v, …) returns ErrSelfLoop
// unconditionally. There is no option to enable them.
//
// Structural invariants, enforced at the point of the offending call with no
// partial mutation on failure:
//
//   - Vertex IDs are unique within one graph (ErrDuplicateVertex).
//   - Every edge's endpoints exist in the vertex set; AddEdge never
//     auto-creates vertices (ErrVertexNotFound).
//   - RemoveVertex cascades removal of all incident edges.
//
// Vertices carry transient, algorithm-scoped state (Explored, Layer, Dist)
// written by the traversal and shortest-path engines. ClearExplorationState
// resets all of it to defaults and is idempotent; every algorithm entry
// point in this module resets the state itself before running, so stale
// values can never leak between independent invocations.
//
// Determinism: Vertices() returns IDs in ascending numeric order, Edges()
// and Neighbors() return edges in insertion order (edge-ID order), so every
// enumeration surface is reproducible.
//
// A Graph instance is intended for one logical caller at a time; methods
// still take an internal lock so that each mutation is individually atomic.
// Destructive algorithms (randomized contraction) must run on Clone()d
// copies, never on a shared instance.
//
// Errors:
//
//	ErrDuplicateVertex - vertex ID already present on AddVertex.
//	ErrVertexNotFound  - operation referenced a non-existent vertex.
//	ErrEdgeNotFound    - operation referenced a non-existent edge.
//	ErrSelfLoop        - edge endpoints are identical.
//	ErrBadWeight       - non-zero weight supplied to an unweighted graph.
package core
