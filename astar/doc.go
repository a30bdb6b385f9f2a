// Package astar implements weighted A* over a terrain.Grid.
//
// A* expands cells in order of f = g + h, where g is the accumulated
// terrain.Grid.StepCost from the start and h is the Manhattan distance to
// the goal. Because every step costs at least its Manhattan length, h is
// consistent and the first goal pop yields a minimum-cost path.
//
// Complexity:
//
//   - Time:  O(N log N) for N cells (each cell finalised once, up to 8 heap
//     pushes per cell under lazy decrease-key).
//   - Space: O(N) for the score, parent and closed maps plus the heap.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when they are popped.
//   - Every pop, stale or not, counts toward Expansions, which is the effort
//     counter reported to benchmarks.
//   - Ties on f are broken by push order, so results are reproducible.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrOptionViolation  if MaxExpansions < 0.
//
// Example usage:
//
//	res, err := astar.Search(g, start, goal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost, res.Path)
package astar
