package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathbench/terrain"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Option configures an A* run.
type Option func(*Options)

// Options holds A* parameters.
type Options struct {
	// MaxExpansions, if > 0, aborts the search after that many pops.
	MaxExpansions int

	// OnExpand is called for every cell whose score becomes final.
	OnExpand func(p terrain.Point, g int)

	err error
}

// DefaultOptions returns Options with no expansion cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		OnExpand:      func(terrain.Point, int) {},
	}
}

// WithMaxExpansions bounds the number of heap pops (0 = unlimited).
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run when a cell is finalised.
func WithOnExpand(fn func(p terrain.Point, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of an A* run.
type Result struct {
	// Found reports whether the goal was popped.
	Found bool
	// Path is start→goal inclusive, nil when not found.
	Path []terrain.Point
	// Cost is the StepCost sum along Path.
	Cost int
	// Expansions counts every heap pop.
	Expansions int
}
