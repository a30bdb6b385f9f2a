// Package simulation drives several agents across a terrain for a number of
// iterations and collects one benchmark sample per agent per iteration.
//
// Each iteration moves through these states:
//
//	Idle → Iterating → Searching → Synchronizing → Advancing → DoneIteration
//	                       ↑              │
//	                       └─ regenerate ─┘
//
// and the run ends in Complete, or in Aborted on error.
//
// Searching fans out one task per agent onto a pool bounded by
// Config.Workers (golang.org/x/sync/errgroup). Every task works on its own
// Clone of the terrain and its own Algorithm instance, so nothing mutable is
// shared. Synchronizing joins all tasks. When any agent is infeasible (the
// reachability probe fails or the algorithm returns no path) the terrain is
// regenerated if Doubling or DynamicGeneration is set; otherwise the run
// stops with ErrNoPossiblePath.
//
// Advancing runs on the calling goroutine only: each tick pops one waypoint
// per unfinished agent and updates the Board. Samples are committed after
// every agent has reached its goal, so all PathData sequences always have
// the same length.
//
// The context passed to Run is checked between phases; in-flight searches
// are never interrupted.
package simulation
