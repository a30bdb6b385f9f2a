package jpsw

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathbench/terrain"
)

// Sentinel errors returned by the JPSW implementation.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed to Search.
	ErrNilGrid = errors.New("jpsw: grid is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("jpsw: invalid option supplied")
)

// Option configures a Searcher.
type Option func(*Options)

// Options holds Searcher parameters.
type Options struct {
	// Cache enables the successor and jump caches.
	Cache bool

	// MaxExpansions, if > 0, aborts a search after that many heap pops.
	MaxExpansions int

	err error
}

// DefaultOptions returns Options with caching on and no expansion cap.
func DefaultOptions() Options {
	return Options{Cache: true}
}

// WithCache toggles the successor and jump caches.
func WithCache(enabled bool) Option {
	return func(o *Options) { o.Cache = enabled }
}

// WithMaxExpansions bounds the number of heap pops per search (0 = unlimited).
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Stats reports cache effectiveness for the lifetime of a Searcher.
type Stats struct {
	SuccessorHits   int `json:"successor_hits"`
	SuccessorMisses int `json:"successor_misses"`
	JumpHits        int `json:"jump_hits"`
	JumpMisses      int `json:"jump_misses"`
}

// Add returns the field-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		SuccessorHits:   s.SuccessorHits + o.SuccessorHits,
		SuccessorMisses: s.SuccessorMisses + o.SuccessorMisses,
		JumpHits:        s.JumpHits + o.JumpHits,
		JumpMisses:      s.JumpMisses + o.JumpMisses,
	}
}

// Result is the outcome of one search.
type Result struct {
	// Found reports whether the goal was reached.
	Found bool
	// Path holds the jump points start→goal, nil when not found.
	Path []terrain.Point
	// Cost is the MoveCost sum along the reconstructed path.
	Cost float64
	// Expansions counts heap pops.
	Expansions int
}
