package simulation

import (
	"context"
	"errors"
	"log"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathbench/benchmark"
	"github.com/katalvlaran/pathbench/jpsw"
	"github.com/katalvlaran/pathbench/terrain"
)

// Sentinel errors.
var (
	// ErrConfiguration indicates a run that cannot start.
	ErrConfiguration = errors.New("simulation: invalid configuration")
	// ErrNoPossiblePath indicates terrain on which some agent cannot reach its goal.
	ErrNoPossiblePath = errors.New("simulation: no possible path")
	// ErrStalled indicates an agent whose route ran out before its goal.
	ErrStalled = errors.New("simulation: agent stalled before reaching its goal")
)

// State is a phase of the simulation loop.
type State int

// Simulation states.
const (
	Idle State = iota
	Iterating
	Searching
	Synchronizing
	Advancing
	DoneIteration
	Complete
	Aborted
)

var stateNames = [...]string{"idle", "iterating", "searching", "synchronizing", "advancing", "done-iteration", "complete", "aborted"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Config describes one run.
type Config struct {
	// Algorithm is a display name understood by search.New.
	Algorithm string `json:"algorithm"`
	// Doubling regenerates terrain and doubles the obstacle target after every iteration.
	Doubling bool `json:"doubling"`
	// DynamicGeneration regenerates terrain on every iteration.
	DynamicGeneration bool `json:"dynamic_generation"`
	// ObstacleCount is the initial obstacle target for generated terrain.
	ObstacleCount uint32 `json:"obstacle_count"`
	// WeightedTileCount is the number of weighted tiles in generated terrain.
	WeightedTileCount uint32 `json:"weighted_tile_count"`
	// Iterations is the number of completed iterations to record.
	Iterations uint8 `json:"iterations"`
	// WeightRange bounds generated weights to 1..WeightRange.
	WeightRange uint8 `json:"weight_range"`

	// Workers bounds concurrent searches. Default runtime.NumCPU().
	Workers int `json:"workers"`
	// MaxRegenerations bounds terrain retries per iteration. Default 100.
	MaxRegenerations int `json:"max_regenerations"`
	// ProbeFactor scales the reachability probe cap. Default 10.
	ProbeFactor int `json:"probe_factor"`
	// GreedyBudget scales Greedy's step budget. Default 2.
	GreedyBudget int `json:"greedy_budget"`
	// Seed makes Greedy's choices reproducible when non-zero.
	Seed int64 `json:"seed"`
	// NoJumpCache turns off JPSW's successor and jump caches.
	NoJumpCache bool `json:"no_jump_cache"`
}

// Regenerates reports whether the run draws fresh terrain.
func (c Config) Regenerates() bool { return c.Doubling || c.DynamicGeneration }

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.MaxRegenerations <= 0 {
		c.MaxRegenerations = 100
	}
	if c.ProbeFactor <= 0 {
		c.ProbeFactor = 10
	}
	if c.GreedyBudget <= 0 {
		c.GreedyBudget = 2
	}
	if c.WeightRange == 0 {
		c.WeightRange = 1
	}
	return c
}

// TerrainProvider produces fresh terrain on request. terrain.Generator
// implements it.
type TerrainProvider interface {
	Generate(req terrain.GenerateRequest) (*terrain.Grid, error)
}

// Sink receives the final report of a completed run.
type Sink interface {
	Save(ctx context.Context, r Report) error
}

// Report summarises a run.
type Report struct {
	RunID         uuid.UUID                   `json:"run_id"`
	Algorithm     string                      `json:"algorithm"`
	Config        Config                      `json:"config"`
	StartedAt     time.Time                   `json:"started_at"`
	FinishedAt    time.Time                   `json:"finished_at"`
	Iterations    int                         `json:"iterations"`
	Regenerations int                         `json:"regenerations"`
	Ticks         int                         `json:"ticks"`
	JumpCache     jpsw.Stats                  `json:"jump_cache"`
	Agents        map[int]*benchmark.PathData `json:"agents"`
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger; nil keeps log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSink registers where the final report is saved.
func WithSink(sink Sink) Option {
	return func(s *Simulator) { s.sink = sink }
}

// WithProbe sets the memory probe read around every search.
func WithProbe(p benchmark.MemoryProbe) Option {
	return func(s *Simulator) {
		if p != nil {
			s.probe = p
		}
	}
}

// WithOnTransition registers a hook called on every state change.
func WithOnTransition(fn func(from, to State)) Option {
	return func(s *Simulator) {
		if fn != nil {
			s.onTransition = fn
		}
	}
}

// WithOnTick registers a hook called after every advancing tick. The board
// must not be retained after the hook returns.
func WithOnTick(fn func(tick int, b *Board)) Option {
	return func(s *Simulator) {
		if fn != nil {
			s.onTick = fn
		}
	}
}

// doubleObstacles saturates instead of overflowing.
func doubleObstacles(n int) int {
	if n > math.MaxInt32/2 {
		return math.MaxInt32
	}
	return n * 2
}
