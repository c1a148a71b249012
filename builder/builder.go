package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/chromatic/core"
)

// Sentinel errors for graph construction.
var (
	// ErrTooFewVertices indicates n below the requested shape's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: edge probability outside [0,1]")
)

// Minimum vertex counts per shape (no magic literals in checks).
const (
	minCycleVertices = 3
	minStarVertices  = 2
	probMin          = 0.0
	probMax          = 1.0
)

// Edgeless returns n isolated vertices. n ≥ 0.
// Complexity: O(n).
func Edgeless(n int) (*core.Graph, error) {
	return core.NewGraph(n)
}

// Cycle returns the simple cycle C_n: edges {i, i+1} for i < n plus
// {n, 1}. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, err
		}
	}
	if err = g.AddEdge(n, 1); err != nil {
		return nil, err
	}

	return g, nil
}

// Complete returns the clique K_n: every unordered pair joined. n ≥ 1.
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if err = g.AddEdge(u, v); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Star returns the star S_n: vertex 1 joined to each of 2..n. n ≥ 2.
// Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarVertices, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for leaf := 2; leaf <= n; leaf++ {
		if err = g.AddEdge(1, leaf); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// RandomSparse returns an Erdős–Rényi-style graph over n vertices:
// each unordered pair {u,v} with u < v is included independently with
// probability p, trials taken in ascending (u, v) order from a source
// seeded with seed; identical inputs always yield the identical graph.
// Requires n ≥ 0 and 0 ≤ p ≤ 1.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, seed int64) (*core.Graph, error) {
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if rng.Float64() < p {
				if err = g.AddEdge(u, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
