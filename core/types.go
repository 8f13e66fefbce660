// This file declares VertexID, Vertex, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateVertex indicates AddVertex was called with an ID that is
	// already present in the graph.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge with identical endpoints was attempted.
	// Self-loops are invalid in every graph this package builds.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// VertexID identifies a vertex within one Graph. IDs are caller-assigned,
// unique per graph, and need not be contiguous (classic inputs use 1..n).
type VertexID = int64

// UnsetLayer is the default value of Vertex.Layer: the vertex has not been
// assigned a BFS layer by any traversal yet.
const UnsetLayer = -1

// InfDist is the default value of Vertex.Dist: the vertex is unreachable as
// far as the last shortest-path run could tell.
const InfDist = int64(math.MaxInt64)

// Vertex represents a node in the graph.
//
// Beyond its identity, a Vertex carries transient algorithm-scoped fields.
// They are owned by whichever traversal or shortest-path run is active and
// are reset by (*Graph).ClearExplorationState, which every algorithm entry
// point calls before it starts.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID VertexID

	// Explored marks the vertex as discovered by the active traversal.
	Explored bool

	// Layer is the BFS layer (hop count from the source), or UnsetLayer.
	Layer int

	// Dist is the tentative/final Dijkstra distance, or InfDist.
	Dist int64
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique catalog ID, endpoints From→To, an integer Weight
// (zero in unweighted graphs), and the Directed flag inherited from its
// Graph. Parallel edges between the same endpoints are distinct Edge values
// with distinct IDs.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID (one endpoint for undirected edges).
	From VertexID

	// To is the destination vertex ID (the other endpoint).
	To VertexID

	// Weight is the length or cost of the edge.
	Weight int64

	// Directed mirrors the owning Graph's orientation.
	Directed bool
}

// Other returns the endpoint of e that is not v.
// For an edge not incident to v the result is unspecified.
func (e *Edge) Other(v VertexID) VertexID {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory graph data structure: an adjacency-list
// multigraph that owns its vertex and edge collections.
//
// Vertices and edges have no lifetime outside their owning graph; removing
// a vertex cascades over its incident edges. The nested adjacency index
// adjacency[from][to] holds the IDs of all parallel edges between a pair.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed bool // orientation of all edges
	weighted bool // allow non-zero weights

	// Storage
	nextEdgeSeq uint64              // atomic edge ID generator
	vertices    map[VertexID]*Vertex // vertex ID → Vertex
	edges       map[string]*Edge     // edge ID → Edge

	// adjacency[from][to][edgeID] = struct{}{}
	adjacency map[VertexID]map[VertexID]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected and unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[VertexID]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[VertexID]map[VertexID]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges in this graph are directed.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether this graph permits non-zero edge weights.
func (g *Graph) Weighted() bool { return g.weighted }
