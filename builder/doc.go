// Package builder provides deterministic constructors for the benchmark
// and test graphs the coloring drivers are exercised on: cycles, cliques,
// stars, edgeless graphs, and Erdős–Rényi-style random sparse graphs.
//
// Every constructor returns a fully loaded *core.Graph with vertices
// 1..n. Edge emission order is fixed, and RandomSparse takes an explicit
// seed, so a given call always produces the identical graph: the same
// determinism rule the coloring drivers follow.
//
// Errors:
//
//	ErrTooFewVertices     - n below the shape's minimum.
//	ErrInvalidProbability - edge probability outside [0,1].
package builder
