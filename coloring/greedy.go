// This file implements the shared ordering/saturation driver behind IDO
// and DSATUR, plus the two score functions. The two algorithms have
// identical control flow and differ only in how a vertex is scored.
package coloring

import (
	"context"

	"github.com/katalvlaran/chromatic/core"
)

// scoreFunc computes the selection heuristic of one uncolored vertex
// against the live run state. Scores are only ever read for uncolored
// vertices and only within the selection step that computed them.
type scoreFunc func(st *runState, v int) int

// incidenceScore is the IDO heuristic: the number of neighbors of v that
// are currently colored, with any color.
// Complexity: O(deg(v)).
func incidenceScore(st *runState, v int) int {
	score := 0
	for _, w := range st.neighbors(v) {
		if st.color[w] != Uncolored {
			score++
		}
	}

	return score
}

// saturationScore is the DSATUR heuristic: the number of *distinct*
// colors among the colored neighbors of v. Three neighbors sharing one
// color saturate v by 1, not 3.
// Complexity: O(deg(v)).
func saturationScore(st *runState, v int) int {
	seen := make(map[int]struct{}, len(st.neighbors(v)))
	for _, w := range st.neighbors(v) {
		if c := st.color[w]; c != Uncolored {
			seen[c] = struct{}{}
		}
	}

	return len(seen)
}

// greedy runs the shared ordering/saturation driver: repeat {select the
// uncolored vertex maximizing (score, degree, smallest id), assign it the
// first-fit color} until every vertex is colored.
//
// Scores are recomputed fresh for every uncolored vertex on every step,
// because coloring one vertex can change every other vertex's score. For
// DSATUR an incremental update would be possible; the full rescan is kept
// because the selection outcome, which is the contract, is identical
// either way.
//
// Complexity: O(V·(V+E)) time, O(V) memory.
func greedy(g *core.Graph, algo Algorithm, score scoreFunc, opts Options) (*Result, error) {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	st := newRunState(g)
	n := g.VertexCount()
	// Per-run scratch, keyed by vertex id; owned by this invocation only.
	scratch := make([]int, n+1)

	for st.remaining > 0 {
		// Cancellation check once per selection step.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for v := 1; v <= n; v++ {
			if st.uncolored[v] {
				scratch[v] = score(st, v)
			}
		}

		v := st.selectMax(scratch)
		if v == 0 {
			// Selector disagrees with remaining>0: internal fault, abort.
			return nil, ErrInconsistentState
		}

		st.assign(v, st.firstFit(v))
	}

	return st.result(algo), nil
}
