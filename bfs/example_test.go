package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathbench/bfs"
	"github.com/katalvlaran/pathbench/terrain"
)

// ExampleSearch_aroundWall demonstrates BFS routing around a wall.
// The middle column is blocked except for its bottom cell, and the corner
// rule forbids slipping diagonally past the wall ends.
func ExampleSearch_aroundWall() {
	g, err := terrain.FromRows([][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.Search(g, terrain.Point{X: 0, Y: 0}, terrain.Point{X: 2, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("found=%v moves=%d expansions=%d\n", res.Found, len(res.Path)-1, res.Expansions)
	fmt.Println(res.Path)
	// Output:
	// found=true moves=6 expansions=7
	// [0,0 0,1 0,2 1,2 2,2 2,1 2,0]
}
