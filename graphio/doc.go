// Package graphio parses the plain-text edge-list format used by the
// classic algorithm-course data files.
//
// Format:
//
//	6          ← first non-blank line: vertex count n; vertices 1..n
//	1 2        ← one edge per line: "u v", or "u v w" with a weight
//	2 3 14
//
// The first edge line fixes the column count for the whole file: three
// columns make the graph weighted, two make it unweighted, and later lines
// must agree. Blank lines and #-comments are skipped anywhere. Endpoints
// must fall in 1..n and differ (the container rejects self-loops).
//
// Errors carry the offending line number: ErrEmptyInput, ErrBadHeader,
// ErrBadEdgeLine, each checkable with errors.Is.
//
// Graphs parse undirected by default; pass WithDirected() to read each
// line as an arc u → v.
package graphio
