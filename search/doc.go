// Package search puts pathbench's four algorithms behind one interface.
//
// An Algorithm returns a path for a start/goal pair on a terrain.Grid plus
// an effort counter (steps, dequeues or heap pops, depending on the
// algorithm). Algorithms that return only waypoints report
// ReturnsFullPath() == false and expand their output with ReconstructPath;
// Resolve does this for any Algorithm.
//
// New selects an implementation by display name. Matching ignores case,
// spaces, dashes and underscores; unknown names fall back to Greedy.
//
//	alg := search.New("A* Search")
//	path, effort := alg.FindPath(start, goal, grid)
//
// Instances hold per-session state (random source, JPSW caches), so each
// goroutine must own its own Algorithm.
package search
