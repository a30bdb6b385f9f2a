// Package pathbench computes routes for agents crossing a weighted grid and
// benchmarks the algorithms that find them.
//
// What is in the box?
//
//	terrain/      Point, Direction, Cell, Grid; pruned 8-connectivity with
//	              the no-corner-cutting rule; move and path costs; random
//	              terrain generator
//	greedy/       greedy walker baseline with a step budget and blacklist
//	bfs/          breadth-first search (fewest moves) with hooks and a cap
//	astar/        weighted A* over step costs, Manhattan heuristic
//	jpsw/         Jump Point Search over Weighted grids, per-session caches
//	search/       the Algorithm interface and name-based selection
//	benchmark/    WCF terrain roughness (Sobel) and PathData statistics
//	agent/        agent state, reachability probe, measured planning
//	simulation/   the multi-agent search-and-move state machine
//	store/        memory, JSON and SQLite report persistence
//	config/       TOML run configuration
//	cmd/pathbench   the command-line driver
//
// Coordinates grow right (X) and down (Y). A blocked orthogonal neighbour
// also removes the two diagonals beside it, so no move ever clips a wall
// corner:
//
//	. # .        x # x    (# blocked, x pruned)
//	. @ .   →    . @ .
//	. . .        . . .
//
//	go get github.com/katalvlaran/pathbench
package pathbench
