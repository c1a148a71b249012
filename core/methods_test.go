// Package core_test verifies core.Graph method-level contracts:
// symmetric edge insertion, duplicate collapse, loop rejection, and
// deterministic neighbor ordering.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/chromatic/core"
)

// TestNewGraph_Validation verifies constructor domain checks.
func TestNewGraph_Validation(t *testing.T) {
	if _, err := core.NewGraph(-1); !errors.Is(err, core.ErrBadVertexCount) {
		t.Fatalf("NewGraph(-1): want ErrBadVertexCount, got %v", err)
	}

	g, err := core.NewGraph(0)
	if err != nil {
		t.Fatalf("NewGraph(0): unexpected error %v", err)
	}
	if g.VertexCount() != 0 || g.EdgeCount() != 0 {
		t.Fatalf("empty graph: want 0 vertices / 0 edges, got %d / %d",
			g.VertexCount(), g.EdgeCount())
	}
}

// TestAddEdge_Symmetry verifies both adjacency lists and both degrees
// reflect a single AddEdge call.
func TestAddEdge_Symmetry(t *testing.T) {
	g, err := core.NewGraph(3)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if err = g.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge(1,2): %v", err)
	}

	if !g.HasEdge(1, 2) || !g.HasEdge(2, 1) {
		t.Fatal("edge {1,2} must be visible from both endpoints")
	}
	if g.Degree(1) != 1 || g.Degree(2) != 1 {
		t.Fatalf("degrees after one edge: want 1/1, got %d/%d", g.Degree(1), g.Degree(2))
	}
	if g.Degree(3) != 0 {
		t.Fatalf("untouched vertex degree: want 0, got %d", g.Degree(3))
	}
}

// TestAddEdge_DuplicateCollapsed verifies a repeated edge does not
// inflate degree or edge count.
func TestAddEdge_DuplicateCollapsed(t *testing.T) {
	g, _ := core.NewGraph(2)
	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	// Same edge again, both orientations.
	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("duplicate AddEdge: %v", err)
	}
	if err := g.AddEdge(2, 1); err != nil {
		t.Fatalf("reversed duplicate AddEdge: %v", err)
	}

	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount: want 1, got %d", g.EdgeCount())
	}
	if g.Degree(1) != 1 || g.Degree(2) != 1 {
		t.Fatalf("degrees: want 1/1, got %d/%d", g.Degree(1), g.Degree(2))
	}
}

// TestAddEdge_Rejections verifies loop and range sentinels.
func TestAddEdge_Rejections(t *testing.T) {
	g, _ := core.NewGraph(2)

	if err := g.AddEdge(1, 1); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("AddEdge(1,1): want ErrLoopNotAllowed, got %v", err)
	}
	if err := g.AddEdge(0, 1); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("AddEdge(0,1): want ErrVertexNotFound, got %v", err)
	}
	if err := g.AddEdge(1, 3); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("AddEdge(1,3): want ErrVertexNotFound, got %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("rejected edges must not be stored; EdgeCount = %d", g.EdgeCount())
	}
}

// TestNeighbors_InsertionOrder verifies deterministic neighbor ordering
// and the out-of-range sentinel.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g, _ := core.NewGraph(4)
	for _, v := range []int{3, 2, 4} {
		if err := g.AddEdge(1, v); err != nil {
			t.Fatalf("AddEdge(1,%d): %v", v, err)
		}
	}

	nbrs, err := g.Neighbors(1)
	if err != nil {
		t.Fatalf("Neighbors(1): %v", err)
	}
	want := []int{3, 2, 4}
	if len(nbrs) != len(want) {
		t.Fatalf("Neighbors(1): want %v, got %v", want, nbrs)
	}
	for i := range want {
		if nbrs[i] != want[i] {
			t.Fatalf("Neighbors(1): want %v, got %v", want, nbrs)
		}
	}

	if _, err = g.Neighbors(5); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("Neighbors(5): want ErrVertexNotFound, got %v", err)
	}
}
