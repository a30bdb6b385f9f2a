// Package bfs provides tunable options and error definitions
// for breadth-first search over a terrain.Grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathbench/terrain"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative expansion cap), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a cell is enqueued.
	// Receives the cell and its depth (moves) from the start.
	OnEnqueue func(p terrain.Point, depth int)

	// OnDequeue is called immediately after a cell leaves the queue.
	OnDequeue func(p terrain.Point, depth int)

	// MaxExpansions, if > 0, stops the search after that many dequeues.
	// A value of 0 explicitly disables the cap.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no expansion cap (MaxExpansions == 0)
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions() Options {
	return Options{
		OnEnqueue:     func(terrain.Point, int) {},
		OnDequeue:     func(terrain.Point, int) {},
		MaxExpansions: 0,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p terrain.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p terrain.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxExpansions bounds the number of dequeued cells.
//
//	n > 0: give up after n dequeues
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxExpansions = n
		}
	}
}

// Result holds the outcome of a BFS run:
//   - Found: whether the goal was dequeued.
//   - Path: start→goal inclusive, nil when not found.
//   - Expansions: number of dequeued cells.
//   - Capped: true when the search stopped on MaxExpansions.
type Result struct {
	Found      bool
	Path       []terrain.Point
	Expansions int
	Capped     bool
}
