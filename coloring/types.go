// This file declares the Algorithm tag, sentinel errors, Options, and the
// Result type shared by every coloring driver.
package coloring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/chromatic/core"
)

// Sentinel errors for coloring execution and result validation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm tag or name.
	ErrUnsupportedAlgorithm = errors.New("coloring: unsupported algorithm")

	// ErrInconsistentState is returned when selection yields no vertex while
	// the driver's bookkeeping says uncolored vertices remain. This is an
	// internal fault: it indicates a defect, so it is reported, never retried.
	ErrInconsistentState = errors.New("coloring: no selectable vertex while uncolored vertices remain")

	// ErrResultMismatch is returned by Result.Validate when the result does
	// not belong to the given graph or its palette accounting is broken.
	ErrResultMismatch = errors.New("coloring: result does not match graph")

	// ErrIncompleteColoring is returned by Result.Validate when some vertex
	// is uncolored or holds a color outside the palette.
	ErrIncompleteColoring = errors.New("coloring: vertex without a palette color")

	// ErrInvalidColoring is returned by Result.Validate when two adjacent
	// vertices share a color.
	ErrInvalidColoring = errors.New("coloring: adjacent vertices share a color")
)

// Uncolored is the color value of a vertex no driver has assigned yet.
const Uncolored = -1

// Algorithm tags the coloring heuristic. Color dispatches on it exactly
// once per run; the heuristics themselves are plain score functions, so
// adding a heuristic means adding a tag and a function, not a string
// branch in a hot loop.
type Algorithm uint8

const (
	// IDO is incidence-degree ordering: prefer the vertex with the most
	// colored neighbors.
	IDO Algorithm = iota

	// DSATUR is saturation-degree ordering: prefer the vertex whose colored
	// neighbors carry the most distinct colors.
	DSATUR

	// RLF is recursive largest first: build one maximal-independent-set
	// color class at a time.
	RLF
)

// String returns the canonical upper-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case IDO:
		return "IDO"
	case DSATUR:
		return "DSATUR"
	case RLF:
		return "RLF"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a case-insensitive name ("ido", "dsatur", "rlf")
// to its Algorithm tag. Unknown names return ErrUnsupportedAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ido":
		return IDO, nil
	case "dsatur":
		return DSATUR, nil
	case "rlf":
		return RLF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

// Algorithms returns all heuristic tags in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{IDO, DSATUR, RLF}
}

// Options configures all coloring drivers.
//   - Ctx: checked once per selection step; cancellation aborts the run
//     with the context's error. Nil defaults to context.Background().
type Options struct {
	Ctx context.Context
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background() (no cancellation).
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Result holds the outcome of one coloring run:
//   - Algo:      the heuristic that produced it.
//   - NumColors: palette size; equals the maximum color index used + 1,
//     and 0 for the empty graph.
//   - Colors:    per-vertex colors, 1-based to match vertex ids;
//     Colors[0] is unused and holds Uncolored.
type Result struct {
	Algo      Algorithm
	NumColors int
	Colors    []int
}

// ColorOf returns the color of vertex v, or Uncolored for an id outside
// the graph the result was computed on.
func (r *Result) ColorOf(v int) int {
	if v < 1 || v >= len(r.Colors) {
		return Uncolored
	}

	return r.Colors[v]
}

// Validate checks the feasibility invariant of the result against g:
// every vertex carries a color in 0..NumColors-1, the palette accounting
// is exact, and no edge joins two vertices of the same color.
//
// Returns nil for a proper coloring (vacuously for the empty graph),
// ErrResultMismatch / ErrIncompleteColoring / ErrInvalidColoring otherwise.
// Complexity: O(V + E).
func (r *Result) Validate(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.VertexCount()
	if len(r.Colors) != n+1 {
		return fmt.Errorf("%w: %d color slots for %d vertices", ErrResultMismatch, len(r.Colors), n)
	}

	maxSeen := -1
	for v := 1; v <= n; v++ {
		c := r.Colors[v]
		if c < 0 || c >= r.NumColors {
			return fmt.Errorf("%w: vertex %d has color %d of palette %d",
				ErrIncompleteColoring, v, c, r.NumColors)
		}
		if c > maxSeen {
			maxSeen = c
		}
	}
	if maxSeen+1 != r.NumColors {
		return fmt.Errorf("%w: palette size %d but max color index %d",
			ErrResultMismatch, r.NumColors, maxSeen)
	}

	for v := 1; v <= n; v++ {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		for _, w := range nbrs {
			// Each undirected edge is checked once.
			if w > v && r.Colors[v] == r.Colors[w] {
				return fmt.Errorf("%w: edge {%d,%d} colored %d",
					ErrInvalidColoring, v, w, r.Colors[v])
			}
		}
	}

	return nil
}
