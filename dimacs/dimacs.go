package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromatic/core"
)

// Sentinel errors for DIMACS parsing.
var (
	// ErrMissingProblemLine indicates the input contains no `p` line.
	ErrMissingProblemLine = errors.New("dimacs: missing problem line")

	// ErrDuplicateProblemLine indicates a second `p` line was found.
	ErrDuplicateProblemLine = errors.New("dimacs: duplicate problem line")

	// ErrMalformedProblemLine indicates a `p` line that does not parse.
	ErrMalformedProblemLine = errors.New("dimacs: malformed problem line")

	// ErrUnsupportedProblemType indicates a problem type other than "edge" or "col".
	ErrUnsupportedProblemType = errors.New("dimacs: unsupported problem type")

	// ErrMalformedEdgeLine indicates an `e` line that does not parse.
	ErrMalformedEdgeLine = errors.New("dimacs: malformed edge line")

	// ErrEdgeBeforeProblem indicates an `e` line before the `p` line.
	ErrEdgeBeforeProblem = errors.New("dimacs: edge line before problem line")
)

// Line-kind markers of the DIMACS edge-list format.
const (
	markComment = "c"
	markProblem = "p"
	markEdge    = "e"

	typeEdge = "edge"
	typeCol  = "col"
)

// Parse reads a DIMACS edge-list description from r and returns the
// fully loaded graph: symmetric adjacency, degrees precomputed,
// duplicate edges collapsed.
//
// Complexity: O(N + M) time, O(N + M) memory.
func Parse(r io.Reader) (*core.Graph, error) {
	var (
		g       *core.Graph
		scanner = bufio.NewScanner(r)
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case markComment:
			continue

		case markProblem:
			if g != nil {
				return nil, fmt.Errorf("%w: line %d", ErrDuplicateProblemLine, lineNo)
			}
			built, err := parseProblem(fields, lineNo)
			if err != nil {
				return nil, err
			}
			g = built

		case markEdge:
			if g == nil {
				return nil, fmt.Errorf("%w: line %d", ErrEdgeBeforeProblem, lineNo)
			}
			if err := parseEdge(g, fields, lineNo); err != nil {
				return nil, err
			}

		default:
			// Unknown line kinds (e.g. "n" in some archives) are skipped.
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}
	if g == nil {
		return nil, ErrMissingProblemLine
	}

	return g, nil
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// parseProblem builds the graph from a `p edge N M` line. The declared
// edge count M must be a valid non-negative integer but is otherwise
// advisory only.
func parseProblem(fields []string, lineNo int) (*core.Graph, error) {
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: line %d: want `p edge N M`, got %d fields",
			ErrMalformedProblemLine, lineNo, len(fields))
	}
	if fields[1] != typeEdge && fields[1] != typeCol {
		return nil, fmt.Errorf("%w: line %d: %q", ErrUnsupportedProblemType, lineNo, fields[1])
	}

	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: vertex count %q", ErrMalformedProblemLine, lineNo, fields[2])
	}
	if m, mErr := strconv.Atoi(fields[3]); mErr != nil || m < 0 {
		return nil, fmt.Errorf("%w: line %d: edge count %q", ErrMalformedProblemLine, lineNo, fields[3])
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %d vertices", ErrMalformedProblemLine, lineNo, n)
	}

	return g, nil
}

// parseEdge records one `e u v` line into g.
func parseEdge(g *core.Graph, fields []string, lineNo int) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: line %d: want `e u v`, got %d fields",
			ErrMalformedEdgeLine, lineNo, len(fields))
	}

	u, errU := strconv.Atoi(fields[1])
	v, errV := strconv.Atoi(fields[2])
	if errU != nil || errV != nil {
		return fmt.Errorf("%w: line %d: endpoints %q %q",
			ErrMalformedEdgeLine, lineNo, fields[1], fields[2])
	}

	if err := g.AddEdge(u, v); err != nil {
		// Out-of-range endpoints or loops; keep the core sentinel visible.
		return fmt.Errorf("dimacs: line %d: %w", lineNo, err)
	}

	return nil
}
