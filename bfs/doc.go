// Package bfs provides breadth-first search over a terrain.Grid,
// returning the path with the fewest moves between two cells.
//
// What
//
//   - Explore cells in non-decreasing move count from a start cell, using the
//     pruned 8-connectivity of terrain.Grid.Neighbors. Cell weights are ignored.
//   - Stop at the first dequeue of the goal and rebuild the path from a
//     parent map.
//   - Returns a Result containing:
//   - Found: whether the goal was reached
//   - Path: start→goal inclusive
//   - Expansions: number of dequeued cells (the effort counter)
//   - Supports hooks at two stages:
//   - OnEnqueue (when a cell is enqueued)
//   - OnDequeue (when a cell leaves the queue)
//   - Honors a MaxExpansions cap (n>0) or explicit “no limit” (n==0).
//
// Why
//
//   - Baseline for weighted searches: its paths minimise move count only.
//   - Cheap reachability probe before running a costlier algorithm
//     (see Reachable).
//
// Determinism
//
//	Neighbors are produced in terrain.Directions order, so the visit sequence
//	and the returned path are fully reproducible.
//
// Complexity (N = |cells|)
//
//   - Time:   O(N)   (each cell enqueued once, at most 8 neighbors each)
//   - Memory: O(N)   (queue, visited set, parent map)
//
// Usage
//
//	res, err := bfs.Search(g, start, goal,
//	    bfs.WithMaxExpansions(10*g.Len()),
//	    bfs.WithOnDequeue(func(p terrain.Point, depth int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxExpansions).
package bfs
