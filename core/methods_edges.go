// Edge lifecycle and queries: AddEdge, RemoveEdge, RemoveAllEdgesBetween,
// HasEdge, EdgesBetween, Edges, EdgeCount, plus the edge-ID generator and
// adjacency helpers.
//
// Determinism:
//   - Edges() returns edges in insertion order (edge-ID sequence order).
//   - RemoveEdge removes the oldest matching edge ("first found").
package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge between two existing vertices and returns its
// catalog ID.
//
// Validation, in order, with no partial mutation on failure:
//  1. from == to            → ErrSelfLoop (never permitted).
//  2. missing endpoint      → ErrVertexNotFound (endpoints are never auto-created).
//  3. weight != 0 on an unweighted graph → ErrBadWeight.
//
// Parallel edges between the same endpoints always succeed and receive
// distinct IDs (multigraph semantics).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, weight int64) (string, error) {
	if from == to {
		return "", ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return "", ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return "", ErrVertexNotFound
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}

	// Mirror undirected edges so adjacency works from both endpoints.
	if !g.directed {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes exactly one edge between from and to: the oldest
// matching edge by insertion order. In undirected graphs the match is
// orientation-insensitive. Returns ErrEdgeNotFound if no edge matches.
//
// To drop every parallel edge between a pair in one call, use
// RemoveAllEdgesBetween.
//
// Complexity: O(p) where p is the number of parallel edges between the pair.
func (g *Graph) RemoveEdge(from, to VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	bucket := g.adjacency[from][to]
	if len(bucket) == 0 {
		return ErrEdgeNotFound
	}

	// Deterministic "first found": smallest edge sequence number wins.
	var oldest string
	for eid := range bucket {
		if oldest == "" || edgeLess(eid, oldest) {
			oldest = eid
		}
	}

	e := g.edges[oldest]
	removeAdjacency(g, e)
	delete(g.edges, oldest)

	return nil
}

// RemoveAllEdgesBetween deletes every edge between from and to (both
// orientations in undirected graphs) and returns how many were removed.
// Zero matches is not an error; the count is simply 0.
//
// This is the bulk primitive the contraction algorithm relies on; it
// replaces any remove-until-error loop.
//
// Complexity: O(p) where p is the number of parallel edges between the pair.
func (g *Graph) RemoveAllEdgesBetween(from, to VertexID) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for eid := range g.adjacency[from][to] {
		e := g.edges[eid]
		removeAdjacency(g, e)
		delete(g.edges, eid)
		removed++
	}
	if g.directed {
		// A directed pair may also carry edges the opposite way; the bulk
		// operation clears the connection entirely, as contraction needs.
		for eid := range g.adjacency[to][from] {
			e := g.edges[eid]
			removeAdjacency(g, e)
			delete(g.edges, eid)
			removed++
		}
	}

	return removed
}

// HasEdge reports whether at least one edge from→to exists. Undirected
// edges are mirrored, so HasEdge works from either endpoint.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// EdgesBetween returns all parallel edges from→to in insertion order.
// Complexity: O(p log p)
func (g *Graph) EdgesBetween(from, to VertexID) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.adjacency[from][to]))
	for eid := range g.adjacency[from][to] {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out
}

// Edges returns all edges in insertion order (edge-ID sequence order).
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID ("e1", "e2", …) using a
// monotonic atomic counter; no fmt allocations on the hot path.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeSeq, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeLess orders generated edge IDs by their numeric sequence: for the
// fixed "e"+digits shape, a shorter ID is always the smaller number.
func edgeLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// sortEdges sorts a slice of edges into insertion order in place.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return edgeLess(es[i].ID, es[j].ID) })
}

// ensureAdjacency bootstraps the nested adjacency bucket for (from, to).
// Callers must hold the write lock.
func ensureAdjacency(g *Graph, from, to VertexID) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[VertexID]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency deletes e's ID from both adjacency buckets and prunes
// buckets that become empty. Callers must hold the write lock.
func removeAdjacency(g *Graph, e *Edge) {
	dropAdjacency(g, e.From, e.To, e.ID)
	if !e.Directed {
		dropAdjacency(g, e.To, e.From, e.ID)
	}
}

// dropAdjacency removes one edge ID from adjacency[from][to], pruning the
// inner bucket when it empties. Callers must hold the write lock.
func dropAdjacency(g *Graph, from, to VertexID, eid string) {
	bucket := g.adjacency[from][to]
	if bucket == nil {
		return
	}
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(g.adjacency[from], to)
	}
}
