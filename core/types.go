// This file declares the Graph type, its sentinel errors, and the
// NewGraph constructor. Query and mutation methods live in methods.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count passed to NewGraph.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a vertex id outside 1..N.
	ErrVertexNotFound = errors.New("core: vertex id out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted; the graph is simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Graph is a simple undirected graph over the fixed vertex set 1..N.
//
// Vertices are identified by their integer id; index 0 of every per-vertex
// slice is unused so that ids map directly to indices. The structure is
// append-only: once all edges are added, callers treat the Graph as
// immutable for the duration of all algorithm runs on it.
type Graph struct {
	// n is the number of vertices (ids 1..n).
	n int

	// adjacency[v] lists the distinct neighbors of v in insertion order.
	adjacency [][]int

	// edgeSet holds one packed key per undirected edge {u,v} with u < v,
	// used to collapse duplicate AddEdge calls in O(1).
	edgeSet map[uint64]struct{}
}

// NewGraph creates a Graph with n isolated vertices (ids 1..n).
// Returns ErrBadVertexCount if n is negative. n == 0 yields a valid
// empty graph.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}

	return &Graph{
		n:         n,
		adjacency: make([][]int, n+1),
		edgeSet:   make(map[uint64]struct{}),
	}, nil
}
