package coloring_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/core"
)

// ColoringSuite exercises all three drivers under shared scenarios.
type ColoringSuite struct {
	suite.Suite
}

// buildGraph constructs an n-vertex graph with the given undirected edges.
func (s *ColoringSuite) buildGraph(n int, edges [][2]int) *core.Graph {
	g, err := core.NewGraph(n)
	require.NoError(s.T(), err)
	for _, e := range edges {
		require.NoError(s.T(), g.AddEdge(e[0], e[1]))
	}

	return g
}

// runAll runs every algorithm on g, validates each result, and asserts
// the expected palette size.
func (s *ColoringSuite) runAll(g *core.Graph, wantColors int) map[coloring.Algorithm]*coloring.Result {
	results := make(map[coloring.Algorithm]*coloring.Result, 3)
	for _, algo := range coloring.Algorithms() {
		res, err := coloring.Color(g, algo, coloring.DefaultOptions())
		require.NoError(s.T(), err, "algorithm %s", algo)
		require.NoError(s.T(), res.Validate(g), "algorithm %s", algo)
		require.Equal(s.T(), wantColors, res.NumColors, "algorithm %s", algo)
		require.Equal(s.T(), algo, res.Algo)
		results[algo] = res
	}

	return results
}

// TestFourCycle verifies a 4-cycle takes exactly 2 colors under every driver.
func (s *ColoringSuite) TestFourCycle() {
	g := s.buildGraph(4, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}})
	s.runAll(g, 2)
}

// TestTriangle verifies a triangle takes exactly 3 colors.
func (s *ColoringSuite) TestTriangle() {
	g := s.buildGraph(3, [][2]int{{1, 2}, {2, 3}, {1, 3}})
	s.runAll(g, 3)
}

// TestStar verifies a star takes 2 colors with the center distinct from
// every leaf.
func (s *ColoringSuite) TestStar() {
	g := s.buildGraph(6, [][2]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}})
	for _, res := range s.runAll(g, 2) {
		for leaf := 2; leaf <= 6; leaf++ {
			require.NotEqual(s.T(), res.ColorOf(1), res.ColorOf(leaf),
				"%s: center must differ from leaf %d", res.Algo, leaf)
		}
	}
}

// TestEdgeless verifies 5 isolated vertices share a single color.
func (s *ColoringSuite) TestEdgeless() {
	g := s.buildGraph(5, nil)
	for _, res := range s.runAll(g, 1) {
		for v := 1; v <= 5; v++ {
			require.Equal(s.T(), 0, res.ColorOf(v), "%s: vertex %d", res.Algo, v)
		}
	}
}

// TestEmptyGraph verifies the empty graph yields 0 colors, vacuously valid.
func (s *ColoringSuite) TestEmptyGraph() {
	g := s.buildGraph(0, nil)
	s.runAll(g, 0)
}

// TestOddCycle verifies C5 takes 3 colors under every driver.
func (s *ColoringSuite) TestOddCycle() {
	g := s.buildGraph(5, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}})
	s.runAll(g, 3)
}

// TestWheel verifies the 6-vertex wheel (hub + C5 rim) takes 4 colors.
func (s *ColoringSuite) TestWheel() {
	g := s.buildGraph(6, [][2]int{
		{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, // hub spokes
		{2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 2}, // rim cycle
	})
	s.runAll(g, 4)
}

// TestDeterminism verifies two runs of the same driver yield the
// identical coloring, not just the same count.
func (s *ColoringSuite) TestDeterminism() {
	g := s.buildGraph(6, [][2]int{
		{1, 2}, {1, 3}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 4}, {2, 5},
	})
	for _, algo := range coloring.Algorithms() {
		first, err := coloring.Color(g, algo, coloring.DefaultOptions())
		require.NoError(s.T(), err)
		second, err := coloring.Color(g, algo, coloring.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), first.Colors, second.Colors, "algorithm %s", algo)
		require.Equal(s.T(), first.NumColors, second.NumColors, "algorithm %s", algo)
	}
}

// TestIndependentRuns verifies interleaved drivers leave no residue: an
// IDO run sandwiched between other algorithms reproduces a standalone
// IDO run exactly.
func (s *ColoringSuite) TestIndependentRuns() {
	g := s.buildGraph(5, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}})

	baseline, err := coloring.Color(g, coloring.IDO, coloring.DefaultOptions())
	require.NoError(s.T(), err)

	_, err = coloring.Color(g, coloring.RLF, coloring.DefaultOptions())
	require.NoError(s.T(), err)
	_, err = coloring.Color(g, coloring.DSATUR, coloring.DefaultOptions())
	require.NoError(s.T(), err)

	again, err := coloring.Color(g, coloring.IDO, coloring.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), baseline.Colors, again.Colors)
}

// TestNilGraph verifies the dispatcher rejects a nil graph.
func (s *ColoringSuite) TestNilGraph() {
	_, err := coloring.Color(nil, coloring.IDO, coloring.DefaultOptions())
	require.ErrorIs(s.T(), err, coloring.ErrGraphNil)
}

// TestUnsupportedAlgorithm verifies an unknown tag is rejected.
func (s *ColoringSuite) TestUnsupportedAlgorithm() {
	g := s.buildGraph(1, nil)
	_, err := coloring.Color(g, coloring.Algorithm(42), coloring.DefaultOptions())
	require.ErrorIs(s.T(), err, coloring.ErrUnsupportedAlgorithm)
}

// TestContextCancellation verifies a canceled context aborts every driver.
func (s *ColoringSuite) TestContextCancellation() {
	g := s.buildGraph(3, [][2]int{{1, 2}, {2, 3}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, algo := range coloring.Algorithms() {
		_, err := coloring.Color(g, algo, coloring.Options{Ctx: ctx})
		require.ErrorIs(s.T(), err, context.Canceled, "algorithm %s", algo)
	}
}

// TestValidateRejectsBrokenResults verifies the Validate error taxonomy.
func (s *ColoringSuite) TestValidateRejectsBrokenResults() {
	g := s.buildGraph(2, [][2]int{{1, 2}})
	res, err := coloring.Color(g, coloring.DSATUR, coloring.DefaultOptions())
	require.NoError(s.T(), err)

	// Wrong graph: vertex count mismatch.
	bigger := s.buildGraph(3, nil)
	require.ErrorIs(s.T(), res.Validate(bigger), coloring.ErrResultMismatch)

	// Uncolored vertex.
	broken := &coloring.Result{NumColors: res.NumColors, Colors: append([]int(nil), res.Colors...)}
	broken.Colors[1] = coloring.Uncolored
	require.ErrorIs(s.T(), broken.Validate(g), coloring.ErrIncompleteColoring)

	// Adjacent vertices sharing a color.
	clash := &coloring.Result{NumColors: 1, Colors: []int{coloring.Uncolored, 0, 0}}
	require.ErrorIs(s.T(), clash.Validate(g), coloring.ErrInvalidColoring)

	// Palette size disagreeing with the max color index.
	inflated := &coloring.Result{NumColors: 3, Colors: append([]int(nil), res.Colors...)}
	require.ErrorIs(s.T(), inflated.Validate(g), coloring.ErrResultMismatch)

	require.ErrorIs(s.T(), res.Validate(nil), coloring.ErrGraphNil)
}

// TestParseAlgorithm verifies name round-trips and rejection.
func (s *ColoringSuite) TestParseAlgorithm() {
	for _, algo := range coloring.Algorithms() {
		parsed, err := coloring.ParseAlgorithm(algo.String())
		require.NoError(s.T(), err)
		require.Equal(s.T(), algo, parsed)
	}

	parsed, err := coloring.ParseAlgorithm(" dsatur ")
	require.NoError(s.T(), err)
	require.Equal(s.T(), coloring.DSATUR, parsed)

	_, err = coloring.ParseAlgorithm("backtracking")
	require.ErrorIs(s.T(), err, coloring.ErrUnsupportedAlgorithm)
}

func TestColoringSuite(t *testing.T) {
	suite.Run(t, new(ColoringSuite))
}
