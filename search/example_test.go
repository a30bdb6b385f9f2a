package search_test

import (
	"fmt"

	"github.com/katalvlaran/pathbench/search"
	"github.com/katalvlaran/pathbench/terrain"
)

// ExampleFindPath runs every built-in algorithm on the same terrain.
func ExampleFindPath() {
	g, _ := terrain.Uniform(5, 5, 1)
	start, goal := terrain.Point{X: 0, Y: 0}, terrain.Point{X: 4, Y: 4}

	for _, name := range search.Names {
		path, _ := search.FindPath(name, start, goal, g, search.WithSeed(1))
		fmt.Printf("%s: cost=%d from=%v to=%v\n", name, g.PathCost(path), path[0], path[len(path)-1])
	}
	// Output:
	// Greedy: cost=8 from=0,0 to=4,4
	// Breadth-First Search: cost=8 from=0,0 to=4,4
	// A* Search: cost=8 from=0,0 to=4,4
	// JPSW: cost=8 from=0,0 to=4,4
}
