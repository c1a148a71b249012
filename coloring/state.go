// This file implements runState, the per-run mutable machinery every
// driver shares: coloring state, uncolored membership, the palette, the
// feasibility check, first-fit assignment, and the selection maximum.
package coloring

import "github.com/katalvlaran/chromatic/core"

// runState is built fresh at the start of every driver invocation and
// discarded at its end. The graph itself is never mutated, so run state
// owned here is the only mutable surface of a run; independence between
// successive runs is structural, not a reset discipline.
type runState struct {
	g *core.Graph

	// color[v] is the assigned color of v, or Uncolored. Index 0 unused.
	color []int

	// uncolored[v] + remaining track the vertices still to color.
	// O(1) removal, no list traversal.
	uncolored []bool
	remaining int

	// palette is the number of colors created so far; color ids are
	// 0..palette-1 in creation order.
	palette int
}

// newRunState allocates run state for g with every vertex uncolored.
// Complexity: O(V).
func newRunState(g *core.Graph) *runState {
	n := g.VertexCount()
	st := &runState{
		g:         g,
		color:     make([]int, n+1),
		uncolored: make([]bool, n+1),
		remaining: n,
	}
	st.color[0] = Uncolored
	for v := 1; v <= n; v++ {
		st.color[v] = Uncolored
		st.uncolored[v] = true
	}

	return st
}

// neighbors returns the adjacency list of v. v always originates from the
// 1..N iteration of a driver, so the core lookup cannot fail.
func (st *runState) neighbors(v int) []int {
	nbrs, _ := st.g.Neighbors(v)

	return nbrs
}

// isFeasible reports whether v may take color c: false iff some neighbor
// of v currently holds c. Uncolored neighbors never block. Reads live
// coloring state, no side effects.
// Complexity: O(deg(v)).
func (st *runState) isFeasible(v, c int) bool {
	for _, w := range st.neighbors(v) {
		if st.color[w] == c {
			return false
		}
	}

	return true
}

// firstFit returns the color for v: the lowest-indexed existing color
// that is feasible, else the next unused index. It never reconsiders
// already-colored vertices.
// Complexity: O(palette · deg(v)) worst case.
func (st *runState) firstFit(v int) int {
	for c := 0; c < st.palette; c++ {
		if st.isFeasible(v, c) {
			return c
		}
	}
	// No existing color fits; a brand-new color is always feasible.
	return st.palette
}

// assign colors v with c and retires it from the uncolored set, growing
// the palette when c is a newly created color.
// Complexity: O(1).
func (st *runState) assign(v, c int) {
	st.color[v] = c
	st.uncolored[v] = false
	st.remaining--
	if c >= st.palette {
		st.palette = c + 1
	}
}

// selectMax returns the uncolored vertex maximizing the two-key order
// (score[v], degree), ties after both keys broken by the smallest id.
// Returns 0 when no uncolored vertex remains.
//
// With every score zero the comparison degenerates to pure max-degree
// selection, which is exactly the bootstrap rule for the first vertex of
// an IDO/DSATUR run, so the bootstrap needs no special case.
// Complexity: O(V).
func (st *runState) selectMax(score []int) int {
	best, bestScore, bestDeg := 0, -1, -1
	n := st.g.VertexCount()
	for v := 1; v <= n; v++ {
		if !st.uncolored[v] {
			continue
		}
		d := st.g.Degree(v)
		if score[v] > bestScore || (score[v] == bestScore && d > bestDeg) {
			best, bestScore, bestDeg = v, score[v], d
		}
	}

	return best
}

// maxDegreeUncolored returns the uncolored vertex of maximum static
// degree, ties broken by the smallest id; 0 when none remain. Used to
// seed each RLF color class.
// Complexity: O(V).
func (st *runState) maxDegreeUncolored() int {
	best, bestDeg := 0, -1
	n := st.g.VertexCount()
	for v := 1; v <= n; v++ {
		if st.uncolored[v] && st.g.Degree(v) > bestDeg {
			best, bestDeg = v, st.g.Degree(v)
		}
	}

	return best
}

// result snapshots the run into an immutable Result tagged with algo.
// Complexity: O(V).
func (st *runState) result(algo Algorithm) *Result {
	colors := make([]int, len(st.color))
	copy(colors, st.color)

	return &Result{
		Algo:      algo,
		NumColors: st.palette,
		Colors:    colors,
	}
}
