// Package dimacs parses the DIMACS edge-list format used by the standard
// graph-coloring benchmark instances (conventionally *.col files).
//
// The format is line-oriented with three meaningful line kinds:
//
//	c <anything>      — comment, ignored
//	p edge <N> <M>    — problem line: N vertices (ids 1..N), M edges
//	e <u> <v>         — one undirected edge {u,v}
//
// The problem type "col" is accepted as an alias of "edge", matching the
// coloring benchmark archives. Unknown line kinds are skipped, repeated
// edges are collapsed by the core graph, and the declared edge count M is
// not enforced: several published instances get it wrong, and the true
// count is recoverable from the parsed graph.
//
// Malformed input is rejected with a sentinel error, so graphs handed to
// the coloring algorithms are always well-formed: a valid vertex range,
// symmetric adjacency, and precomputed degrees.
//
// Errors:
//
//	ErrMissingProblemLine     - no `p` line in the input.
//	ErrDuplicateProblemLine   - more than one `p` line.
//	ErrMalformedProblemLine   - `p` line that does not parse.
//	ErrUnsupportedProblemType - problem type other than "edge" or "col".
//	ErrMalformedEdgeLine      - `e` line that does not parse.
//	ErrEdgeBeforeProblem      - `e` line before the `p` line.
//	core.ErrVertexNotFound    - edge endpoint outside 1..N (wrapped).
package dimacs
