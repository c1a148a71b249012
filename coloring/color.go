// Package coloring - unified dispatcher for the coloring drivers.
package coloring

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// Color runs the heuristic tagged by algo on g and returns its Result.
//
// Contracts:
//   - g must be non-nil and fully loaded; the run treats it as read-only.
//   - The dispatch happens exactly once per run; the heuristic inside the
//     selection loop is a score function, never a tag comparison.
//   - Runs are independent: all mutable state is created here and
//     discarded on return, so back-to-back runs on the same Graph cannot
//     influence each other.
//
// Returns ErrGraphNil for a nil graph, ErrUnsupportedAlgorithm for an
// unknown tag, ErrInconsistentState for an internal selection fault, or
// the context's error if opts.Ctx is canceled.
//
// Complexity: per algorithm; see greedy.go and rlf.go.
func Color(g *core.Graph, algo Algorithm, opts Options) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	switch algo {
	case IDO:
		return greedy(g, IDO, incidenceScore, opts)
	case DSATUR:
		return greedy(g, DSATUR, saturationScore, opts)
	case RLF:
		return rlf(g, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algo)
	}
}
