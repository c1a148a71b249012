package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/core"
)

// ExampleColor colors a 4-cycle with DSATUR. Two colors suffice: the
// cycle is bipartite, and the heuristic finds the bipartition greedily.
func ExampleColor() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 4)
	_ = g.AddEdge(4, 1)

	res, err := coloring.Color(g, coloring.DSATUR, coloring.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s used %d colors\n", res.Algo, res.NumColors)
	for v := 1; v <= g.VertexCount(); v++ {
		fmt.Printf("vertex %d → color %d\n", v, res.ColorOf(v))
	}
	// Output:
	// DSATUR used 2 colors
	// vertex 1 → color 0
	// vertex 2 → color 1
	// vertex 3 → color 0
	// vertex 4 → color 1
}
