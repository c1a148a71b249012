// This file implements the Graph query and mutation methods.
// All methods are deterministic; none retain references to caller memory.
package core

import "fmt"

// edgeKey packs an undirected edge {u,v} into a single map key.
// Callers guarantee u != v; the smaller endpoint goes into the high bits
// so that (u,v) and (v,u) collide.
func edgeKey(u, v int) uint64 {
	if u > v {
		u, v = v, u
	}

	return uint64(u)<<32 | uint64(v)
}

// VertexCount returns the number of vertices N.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edgeSet) }

// HasVertex reports whether id is a valid vertex id (1..N).
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool { return id >= 1 && id <= g.n }

// AddEdge records the undirected edge {u,v} in both adjacency lists.
//
// A repeated edge is collapsed silently, keeping the graph simple and
// Degree equal to the count of distinct neighbors; real DIMACS instances
// occasionally repeat an `e` line and must not inflate degrees.
//
// Returns ErrVertexNotFound if either endpoint is outside 1..N, or
// ErrLoopNotAllowed if u == v.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("core: AddEdge(%d,%d): endpoint %d: %w", u, v, u, ErrVertexNotFound)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("core: AddEdge(%d,%d): endpoint %d: %w", u, v, v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	key := edgeKey(u, v)
	if _, dup := g.edgeSet[key]; dup {
		return nil
	}
	g.edgeSet[key] = struct{}{}

	// Symmetric insertion keeps degrees and adjacency mirrored.
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)

	return nil
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Out-of-range endpoints and loops simply report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) || u == v {
		return false
	}
	_, ok := g.edgeSet[edgeKey(u, v)]

	return ok
}

// Neighbors returns the distinct neighbors of v in insertion order.
//
// The returned slice is the Graph's own storage: callers must treat it as
// read-only. This avoids a copy inside the algorithms' hot selection
// loops, which rescan every adjacency list on every step.
//
// Returns ErrVertexNotFound for an id outside 1..N.
// Complexity: O(1).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("core: Neighbors(%d): %w", v, ErrVertexNotFound)
	}

	return g.adjacency[v], nil
}

// Degree returns the number of distinct neighbors of v, or 0 for an id
// outside 1..N. The value is fixed once the graph is fully loaded.
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adjacency[v])
}
