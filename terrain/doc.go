// Package terrain models a weighted 2D grid of cells and the adjacency rules
// shared by every search algorithm in pathbench.
//
// What:
//
//   - Cell carries a traversability flag and an integer weight in 1..255.
//   - Grid maps Point → Cell. It is immutable once built and cheap to Clone,
//     so each concurrent search can own a private snapshot.
//   - Neighbors applies pruned 8-connectivity: a diagonal move is never
//     allowed to squeeze past an orthogonally blocked cell.
//   - MoveCost is the real-valued traversal cost used by JPSW, StepCost the
//     integer Manhattan-equivalent cost used by A* and by PathCost.
//   - Generator produces random terrain snapshots for regeneration
//     experiments.
//
// Coordinates:
//
//	X grows to the right and Y grows downward, so N is (0,-1) and SE is (1,1).
//
// Complexity:
//
//   - Cell, IsTraversable, MoveCost, StepCost: O(1) expected.
//   - Neighbors: O(8).
//   - Clone, Points: O(N) for N cells.
//
// Errors:
//
//   - ErrEmptyGrid: no cells supplied.
//   - ErrNonRectangular: rows of differing lengths in FromRows.
//   - ErrBadWeight: a weight outside 1..255 in FromRows.
//   - ErrBadDimensions: non-positive width or height.
package terrain
