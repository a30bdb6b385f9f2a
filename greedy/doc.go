// Package greedy implements a blacklist-driven greedy walk over a
// terrain.Grid: the cheapest baseline among pathbench's algorithms.
//
// What
//
//   - At every step the walker looks at the pruned neighbors of its current
//     cell that are not blacklisted.
//   - Neighbors strictly closer to the goal by Manhattan distance are "good";
//     the closest good move is taken (ties keep direction order).
//   - With no good move, a uniformly random other neighbor is taken and the
//     cell being left is blacklisted, so the walker cannot oscillate forever.
//   - The walk gives up after Budget × |cells| steps.
//
// Cell weights are ignored. The returned path may revisit cells; it is a
// record of the walk, not an optimised route.
//
// Complexity
//
//   - Time:   O(B) neighbor scans for a budget of B steps.
//   - Memory: O(B) for the path plus the blacklist.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if Budget is not positive.
package greedy
