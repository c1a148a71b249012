// Package chromatic is a small laboratory for greedy graph-coloring
// heuristics: color the vertices of an undirected graph so that no two
// adjacent vertices share a color, using as few colors as the heuristic
// manages, and measure how each heuristic behaves on DIMACS benchmarks.
//
// 🚀 What is chromatic?
//
//	A modern, deterministic library that brings together:
//		• Core primitives: a compact integer-vertex graph store
//		• Heuristics: IDO (incidence-degree ordering), DSATUR (saturation
//		  degree), RLF (recursive largest first)
//		• A DIMACS .col edge-list loader for standard benchmark instances
//		• Deterministic graph generators for tests and benchmarks
//		• A benchmark harness that times every algorithm on every instance
//
// ✨ Why choose chromatic?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed tie-breaking, reproducible colorings
//   - Pure Go core – the coloring packages carry no cgo and no services
//   - Extensible – a new heuristic is one constant plus one score function
//
// Under the hood, everything is organized under five subpackages:
//
//	core/     — fundamental Graph type: adjacency lists, degrees, edges
//	coloring/ — the three greedy drivers and the shared run machinery
//	dimacs/   — DIMACS edge-list (.col) parsing
//	builder/  — deterministic benchmark-graph constructors
//	bench/    — suite configuration, timed runs, result reporting
//
// Quick ASCII example:
//
//	    1───2
//	    │   │        a 4-cycle; every heuristic here colors
//	    4───3        it with exactly two colors.
//
// Dive into the per-package doc.go files for contracts, complexity notes,
// and the exact tie-breaking rules each heuristic follows.
//
//	go get github.com/katalvlaran/chromatic
package chromatic
