// Package jpsw implements Jump Point Search over Weighted grids.
//
// What
//
//   - A Searcher is one search session. It owns two caches bound to the grid
//     snapshot and goal it last searched:
//   - the successor cache, keyed by (arrival direction, 3×3 weight signature);
//   - the orthogonal jump cache, keyed by (position, direction).
//   - Searching a different grid clears both caches; a different goal clears
//     the jump cache only, since successor sets never depend on the goal.
//   - Search returns the coarse jump-point path start→goal. Reconstruct
//     expands it into adjacent cells.
//
// Successor pruning
//
//	Arriving at x from parent p = x − d, a neighbour n of x is kept only when
//	the route p→x→n is cheaper than the best route from p to n inside the
//	3×3 block that does not pass through x. For orthogonal arrival the route
//	through x must be strictly cheaper; for diagonal arrival a tie keeps n.
//	The start cell keeps every valid move. All costs come from
//	terrain.OrthogonalCost and terrain.DiagonalCost, so blocked cells and
//	corner cutting are handled in one place.
//
// Jumps
//
//   - Orthogonal jumps stop at the goal, at a cell whose weight differs from
//     the jump origin, or at a cell with a forced neighbour; they fail when
//     the next move is impossible.
//   - Diagonal jumps stop under the same conditions, and also at any cell
//     from which an orthogonal jump along either component succeeds.
//
// The outer search is A* over jump points with the octile distance as an
// admissible heuristic (every orthogonal move costs at least 1 and every
// diagonal move at least √2).
//
// Caches never change results: WithCache(false) yields identical paths.
//
// A Searcher must not be shared between goroutines.
package jpsw
