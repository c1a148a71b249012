// Package bench drives the coloring heuristics across a suite of DIMACS
// benchmark instances and reports colors used and wall-clock time per
// instance × algorithm combination.
//
// A suite is described by a small YAML file:
//
//	graph_dir: testdata/instances
//	instances:
//	  - dsjc250.5.col
//	  - dsjc500.1.col
//	algorithms: [ido, dsatur, rlf]   # omit for all three
//
// Run semantics follow the benchmark-harness contract: every combination
// is timed independently, each run's coloring is validated before it is
// reported, and a failed combination (unreadable file, invalid result)
// is recorded and logged but never stops the remaining combinations.
// Timing lives here, not in the coloring core.
//
// Errors:
//
//	ErrNoInstances - the suite lists no instances to run.
package bench
