package search

import (
	"github.com/katalvlaran/pathbench/greedy"
	"github.com/katalvlaran/pathbench/jpsw"
	"github.com/katalvlaran/pathbench/terrain"
)

// Display names of the built-in algorithms.
const (
	NameGreedy = "Greedy"
	NameBFS    = "Breadth-First Search"
	NameAStar  = "A* Search"
	NameJPSW   = "JPSW"
)

// Names lists the built-in algorithms in menu order.
var Names = []string{NameGreedy, NameBFS, NameAStar, NameJPSW}

// Algorithm is a pluggable path search.
type Algorithm interface {
	// FindPath returns a start→goal path and the effort spent. An empty
	// path means no route was found.
	FindPath(start, goal terrain.Point, g *terrain.Grid) ([]terrain.Point, int)
	// ReturnsFullPath reports whether FindPath yields every cell.
	ReturnsFullPath() bool
	// ReconstructPath expands waypoint output into adjacent cells.
	// Full-path algorithms return their input unchanged.
	ReconstructPath(path []terrain.Point) []terrain.Point
	// Name is the display name.
	Name() string
}

// Option configures algorithm construction.
type Option func(*Options)

// Options holds per-algorithm tuning.
type Options struct {
	// Seed drives Greedy's random choices; 0 means time-seeded.
	Seed int64
	// GreedyBudget is Greedy's per-cell step budget.
	GreedyBudget int
	// JumpCache toggles JPSW's caches.
	JumpCache bool
}

// DefaultOptions returns the defaults used by New.
func DefaultOptions() Options {
	return Options{GreedyBudget: greedy.DefaultBudget, JumpCache: true}
}

// WithSeed fixes Greedy's random source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithGreedyBudget sets Greedy's step budget factor; non-positive values keep the default.
func WithGreedyBudget(factor int) Option {
	return func(o *Options) {
		if factor > 0 {
			o.GreedyBudget = factor
		}
	}
}

// WithJumpCache toggles JPSW's successor and jump caches.
func WithJumpCache(enabled bool) Option {
	return func(o *Options) { o.JumpCache = enabled }
}

// CacheReporter is implemented by algorithms that keep search caches.
type CacheReporter interface {
	Stats() jpsw.Stats
}
