// This file implements the RLF (recursive largest first) driver. Unlike
// the shared ordering/saturation loop, RLF builds one full color class at
// a time as a maximal independent set.
package coloring

import (
	"context"

	"github.com/katalvlaran/chromatic/core"
)

// rlf colors g one class at a time:
//
//  1. Seed a new class with the uncolored vertex of maximum static degree
//     (ties: smallest id) and give it the next color index.
//  2. Maintain a forbidden set: every vertex adjacent to a member of the
//     class under construction. Start it with the seed's neighbors.
//  3. Among uncolored, non-forbidden vertices, repeatedly add the one
//     with the most neighbors inside the forbidden set (ties: larger
//     degree, then smallest id) and extend the forbidden set with its
//     neighbors. The class is done when no eligible vertex remains.
//  4. While uncolored vertices remain, open the next class.
//
// Growing each class toward vertices that would most constrain future
// classes typically needs fewer colors than vertex-by-vertex greedy
// ordering, at the cost of a full rescan of the uncolored set per inner
// step. Colors used equals the number of classes built.
//
// Complexity: O(C·V·(V+E)) time with C classes, O(V) memory.
func rlf(g *core.Graph, opts Options) (*Result, error) {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	st := newRunState(g)
	n := g.VertexCount()
	// forbidden[v] marks v adjacent to the class under construction;
	// reset when a new class opens.
	forbidden := make([]bool, n+1)

	for st.remaining > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seed := st.maxDegreeUncolored()
		if seed == 0 {
			return nil, ErrInconsistentState
		}

		// Open the next color class with the seed.
		class := st.palette
		st.assign(seed, class)

		for v := range forbidden {
			forbidden[v] = false
		}
		for _, w := range st.neighbors(seed) {
			forbidden[w] = true
		}

		// Grow the class to a maximal independent set.
		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			best, bestScore, bestDeg := 0, -1, -1
			for v := 1; v <= n; v++ {
				if !st.uncolored[v] || forbidden[v] {
					continue
				}
				score := 0
				for _, w := range st.neighbors(v) {
					if forbidden[w] {
						score++
					}
				}
				d := st.g.Degree(v)
				if score > bestScore || (score == bestScore && d > bestDeg) {
					best, bestScore, bestDeg = v, score, d
				}
			}
			if best == 0 {
				// Every uncolored vertex is forbidden (or none remain).
				break
			}

			st.assign(best, class)
			for _, w := range st.neighbors(best) {
				forbidden[w] = true
			}
		}
	}

	return st.result(RLF), nil
}
