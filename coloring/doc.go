// Package coloring implements a family of greedy vertex-coloring
// heuristics on graphs represented by *core.Graph. Every driver produces
// a proper coloring: no two adjacent vertices share a color. The drivers
// differ only in the order vertices are picked, which is what determines
// how many colors the greedy first-fit assignment ends up needing.
//
// The heuristics offered are:
//
//   - IDO (incidence-degree ordering)
//
//   - Method: repeatedly pick the uncolored vertex with the most colored
//     neighbors; assign the lowest feasible color.
//
//   - Time:   O(V·(V+E)); every selection step rescans all uncolored
//     vertices and their adjacency lists.
//
//   - Memory: O(V) for run state and the per-run score scratch.
//
//   - DSATUR (saturation-degree ordering)
//
//   - Method: like IDO, but a vertex's score is the number of *distinct*
//     colors among its colored neighbors: three neighbors sharing one
//     color contribute a saturation of 1, not 3.
//
//   - Time:   O(V·(V+E)) with a small per-vertex set for distinct counts.
//
//   - Memory: O(V).
//
//   - Typically needs no more colors than IDO and often fewer.
//
//   - RLF (recursive largest first)
//
//   - Method: build one full color class at a time as a maximal
//     independent set, preferring vertices adjacent to many already
//     forbidden vertices so that future classes are constrained less.
//
//   - Time:   O(C·V·(V+E)) where C is the number of classes built.
//
//   - Memory: O(V) for the forbidden-set bitset and run state.
//
//   - Highest per-step cost, usually the fewest colors of the three.
//
// # Selection rule
//
// All selection is a two-key lexicographic maximum over the uncolored
// vertices: primary key = the heuristic score (recomputed fresh on every
// step, since coloring one vertex can change every other score),
// secondary key = static degree, remaining ties broken by the smallest
// vertex id. The very first vertex of a run is therefore picked purely by
// maximum degree: every score is still zero, so the same comparison
// degenerates to the bootstrap rule. Fixed tie-breaking makes every run
// reproducible: the same graph and algorithm always yield the identical
// coloring.
//
// # Assignment rule
//
// First-fit: scan colors in creation order (0, 1, 2, …) and take the
// lowest one no neighbor holds; if none fits, create the next color.
// Already-colored vertices are never reconsidered.
//
// # API
//
// Options configures all three drivers:
//
//	type Options struct {
//	    Ctx context.Context // for cancellation / timeouts
//	}
//
// Use DefaultOptions() to obtain production-safe defaults, then dispatch
// once per run on the Algorithm tag:
//
//	res, err := coloring.Color(g, coloring.DSATUR, coloring.DefaultOptions())
//	// res.NumColors - palette size (0 for the empty graph)
//	// res.ColorOf(v) - color of vertex v, in 0..NumColors-1
//
// Runs are independent: each invocation builds fresh state, so invoking
// drivers back-to-back on the same Graph never leaks colors, scores, or
// palette entries between runs.
//
// # Errors
//
//	ErrGraphNil             - nil graph passed to Color or Result.Validate.
//	ErrUnsupportedAlgorithm - unknown Algorithm tag or name.
//	ErrInconsistentState    - selector found no vertex while uncolored
//	                          vertices remain; indicates a defect, never
//	                          a normal condition, and is never retried.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
//
// # Integration
//
//   - Relies on github.com/katalvlaran/chromatic/core for graph storage.
//   - Load DIMACS instances via github.com/katalvlaran/chromatic/dimacs.
//   - Benchmark across instances via github.com/katalvlaran/chromatic/bench.
package coloring
