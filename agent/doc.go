// Package agent holds a single mover's start, goal, position and planned
// route, and measures each planning call for the benchmark subsystem.
//
// The planned route is kept as a stack: the last element is the next cell
// to enter. SetPath takes a start→goal path, drops its first cell (where
// the agent already stands) and reverses the rest.
package agent
