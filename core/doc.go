// Package core defines the central Graph type used by every coloring
// algorithm: a simple undirected graph over the fixed vertex set 1..N,
// stored as adjacency lists with per-vertex degree available in O(1).
//
// The Graph is built once (by the dimacs loader or the builder package)
// and is treated as read-only by every algorithm run on it. No coloring
// state lives here: colorings belong to the run that produced them, so
// successive algorithm runs on the same Graph are independent by
// construction.
//
// Structural guarantees:
//
//	– Undirected: AddEdge(u, v) records the edge in both adjacency lists,
//	  and both degrees reflect it.
//	– Simple: self-loops are rejected; a repeated edge is collapsed, so
//	  Degree(v) counts distinct neighbors.
//	– Deterministic: Neighbors(v) returns neighbors in insertion order,
//	  which is stable for a given input.
//
// Errors:
//
//	ErrBadVertexCount - negative vertex count passed to NewGraph.
//	ErrVertexNotFound - an edge endpoint outside 1..N.
//	ErrLoopNotAllowed - an edge from a vertex to itself.
package core
