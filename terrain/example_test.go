package terrain_test

import (
	"fmt"

	"github.com/katalvlaran/pathbench/terrain"
)

// ExampleGrid_Neighbors shows how a blocked orthogonal cell also hides the
// two diagonals beside it.
func ExampleGrid_Neighbors() {
	// 0 marks an obstacle; the centre's northern neighbour is blocked.
	g, err := terrain.FromRows([][]int{
		{1, 0, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Neighbors(terrain.Point{X: 1, Y: 1}))
	// Output: [2,1 2,2 1,2 0,2 0,1]
}

// ExampleGrid_PathCost prices a diagonal walk across a uniform grid.
func ExampleGrid_PathCost() {
	g, _ := terrain.Uniform(3, 3, 1)
	path := []terrain.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	fmt.Printf("cost=%d move=%.3f\n", g.PathCost(path), g.MoveCost(path[0], path[1]))
	// Output: cost=3 move=1.414
}
