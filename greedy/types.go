package greedy

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/pathbench/terrain"
)

// Sentinel errors for greedy walks.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("greedy: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("greedy: invalid option supplied")
)

// DefaultBudget is the step budget per grid cell.
const DefaultBudget = 2

// Option configures a walk.
type Option func(*Options)

// Options holds the walk parameters.
type Options struct {
	// Budget multiplies the grid size to give the step limit.
	Budget int

	// Rand drives the choice among bad moves. A Walker must not share it
	// with other goroutines.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns Options with Budget = DefaultBudget and a
// time-seeded random source.
func DefaultOptions() Options {
	return Options{
		Budget: DefaultBudget,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithBudget sets the per-cell step budget; it must be positive.
func WithBudget(factor int) Option {
	return func(o *Options) {
		if factor <= 0 {
			o.err = fmt.Errorf("%w: Budget must be positive (%d)", ErrOptionViolation, factor)
			return
		}
		o.Budget = factor
	}
}

// WithSeed makes the walk reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// Result is the outcome of one walk.
type Result struct {
	// Found reports whether the goal was reached within budget.
	Found bool
	// Path is start→goal inclusive, nil when not found.
	Path []terrain.Point
	// Steps counts loop iterations, including the final goal check.
	Steps int
}
