package simulation

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathbench/agent"
	"github.com/katalvlaran/pathbench/benchmark"
	"github.com/katalvlaran/pathbench/jpsw"
	"github.com/katalvlaran/pathbench/search"
	"github.com/katalvlaran/pathbench/terrain"
)

// Simulator runs multi-agent benchmark sessions. A Simulator runs one
// session at a time.
type Simulator struct {
	cfg      Config
	provider TerrainProvider
	logger   *log.Logger
	sink     Sink
	probe    benchmark.MemoryProbe

	onTransition func(from, to State)
	onTick       func(tick int, b *Board)

	state    State
	searches int64
}

// New returns a Simulator. provider may be nil when the configuration
// never regenerates terrain.
func New(cfg Config, provider TerrainProvider, opts ...Option) *Simulator {
	s := &Simulator{
		cfg:          cfg.withDefaults(),
		provider:     provider,
		logger:       log.Default(),
		probe:        benchmark.RuntimeProbe{},
		onTransition: func(State, State) {},
		onTick:       func(int, *Board) {},
		state:        Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current phase.
func (s *Simulator) State() State { return s.state }

func (s *Simulator) transition(to State) {
	from := s.state
	s.state = to
	s.onTransition(from, to)
}

// outcome is what one search task hands back to the coordinator.
type outcome struct {
	agent    *agent.Agent
	sample   benchmark.Sample
	feasible bool
	cache    jpsw.Stats
}

// Run executes cfg.Iterations iterations for agents starting at starts and
// heading to goals. grid is the terrain used when the configuration does
// not regenerate; it may be nil otherwise.
//
// Errors:
//   - ErrConfiguration: mismatched or empty agent lists, zero iterations,
//     no terrain and no way to generate one.
//   - ErrNoPossiblePath: an agent cannot reach its goal and regeneration is
//     off or exhausted.
//   - ErrStalled: a route ended away from its goal.
//   - ctx.Err() when the context is done between phases.
//   - wrapped provider or sink errors.
//
// The returned Report holds every completed iteration even on error.
func (s *Simulator) Run(ctx context.Context, grid *terrain.Grid, starts, goals []terrain.Point) (Report, error) {
	report := Report{
		RunID:     uuid.New(),
		Algorithm: search.New(s.cfg.Algorithm).Name(),
		Config:    s.cfg,
		StartedAt: time.Now(),
		Agents:    make(map[int]*benchmark.PathData, len(starts)),
	}

	if err := s.validate(grid, starts, goals); err != nil {
		return report, err
	}
	agents, err := agent.NewAgents(starts, goals)
	if err != nil {
		return report, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	for i := range agents {
		report.Agents[i] = &benchmark.PathData{}
	}
	reserved := append(append([]terrain.Point(nil), starts...), goals...)
	obstacles := int(s.cfg.ObstacleCount)

	s.logger.Printf("run=%s algorithm=%q agents=%d iterations=%d", report.RunID, report.Algorithm, len(agents), s.cfg.Iterations)

	for it := 0; it < int(s.cfg.Iterations); it++ {
		s.transition(Iterating)
		if err := ctx.Err(); err != nil {
			return s.abort(report, err)
		}

		current, results, regenerations, err := s.searchUntilFeasible(ctx, it, grid, agents, obstacles, reserved)
		report.Regenerations += regenerations
		if err != nil {
			return s.abort(report, err)
		}
		for i, r := range results {
			agents[i] = r.agent
		}

		s.transition(Advancing)
		ticks, err := s.advance(current, agents, starts, goals)
		report.Ticks += ticks
		if err != nil {
			return s.abort(report, fmt.Errorf("iteration %d: %w", it, err))
		}

		s.transition(DoneIteration)
		for i, r := range results {
			report.Agents[i].Append(r.sample)
			report.JumpCache = report.JumpCache.Add(r.cache)
			agents[i].Reset()
		}
		report.Iterations++
		if s.cfg.Doubling {
			obstacles = doubleObstacles(obstacles)
		}
		s.logger.Printf("iteration=%d regenerations=%d ticks=%d obstacles=%d", it, regenerations, ticks, obstacles)
	}

	s.transition(Complete)
	report.FinishedAt = time.Now()
	if s.sink != nil {
		if err := s.sink.Save(ctx, report); err != nil {
			return report, fmt.Errorf("save report %s: %w", report.RunID, err)
		}
	}

	return report, nil
}

func (s *Simulator) validate(grid *terrain.Grid, starts, goals []terrain.Point) error {
	switch {
	case len(starts) == 0:
		return fmt.Errorf("%w: no agents", ErrConfiguration)
	case len(starts) != len(goals):
		return fmt.Errorf("%w: %d starts, %d goals", ErrConfiguration, len(starts), len(goals))
	case s.cfg.Iterations == 0:
		return fmt.Errorf("%w: iterations must be positive", ErrConfiguration)
	case s.cfg.Regenerates() && s.provider == nil:
		return fmt.Errorf("%w: regeneration requested without a terrain provider", ErrConfiguration)
	case !s.cfg.Regenerates() && grid == nil:
		return fmt.Errorf("%w: no terrain and regeneration disabled", ErrConfiguration)
	}
	return nil
}

func (s *Simulator) abort(report Report, err error) (Report, error) {
	s.transition(Aborted)
	report.FinishedAt = time.Now()
	s.logger.Printf("run=%s aborted: %v", report.RunID, err)
	return report, err
}

// searchUntilFeasible runs Searching and Synchronizing, regenerating the
// terrain while any agent is infeasible and regeneration is allowed.
func (s *Simulator) searchUntilFeasible(
	ctx context.Context,
	iteration int,
	grid *terrain.Grid,
	agents []*agent.Agent,
	obstacles int,
	reserved []terrain.Point,
) (*terrain.Grid, []outcome, int, error) {
	regenerations := 0
	for {
		current := grid
		if s.cfg.Regenerates() {
			g, err := s.provider.Generate(terrain.GenerateRequest{
				Obstacles:   obstacles,
				Weighted:    int(s.cfg.WeightedTileCount),
				WeightRange: s.cfg.WeightRange,
				Agents:      len(agents),
				Reserved:    reserved,
			})
			if err != nil {
				return nil, nil, regenerations, fmt.Errorf("generate terrain: %w", err)
			}
			current = g
		}

		s.transition(Searching)
		results := s.fanOut(current, agents)
		s.transition(Synchronizing)

		blocked := -1
		for i, r := range results {
			if !r.feasible {
				blocked = i
				break
			}
		}
		if blocked < 0 {
			return current, results, regenerations, nil
		}

		if !s.cfg.Regenerates() {
			return nil, nil, regenerations, fmt.Errorf("%w: agent %d (%v→%v)", ErrNoPossiblePath, blocked, agents[blocked].Start, agents[blocked].Goal)
		}
		if regenerations >= s.cfg.MaxRegenerations {
			return nil, nil, regenerations, fmt.Errorf("%w: agent %d still blocked after %d regenerations", ErrNoPossiblePath, blocked, regenerations)
		}
		regenerations++
		s.logger.Printf("iteration=%d agent=%d infeasible, regenerating attempt=%d", iteration, blocked, regenerations)

		if err := ctx.Err(); err != nil {
			return nil, nil, regenerations, err
		}
	}
}

// fanOut searches for every agent concurrently and joins. Each task gets a
// private terrain clone, agent copy and algorithm instance.
func (s *Simulator) fanOut(grid *terrain.Grid, agents []*agent.Agent) []outcome {
	results := make([]outcome, len(agents))

	var eg errgroup.Group
	eg.SetLimit(s.cfg.Workers)
	for i, a := range agents {
		i := i // per-iteration copy for the goroutine below (pre-Go 1.22 loop semantics)
		start, goal := a.Start, a.Goal
		seed := int64(0)
		if s.cfg.Seed != 0 {
			seed = s.cfg.Seed + s.searches
		}
		s.searches++

		eg.Go(func() error {
			snapshot := grid.Clone()
			local := agent.New(start, goal)
			results[i] = outcome{agent: local}
			if !local.IsPathPossibleWithin(snapshot, s.cfg.ProbeFactor) {
				return nil
			}

			alg := search.New(s.cfg.Algorithm,
				search.WithSeed(seed),
				search.WithGreedyBudget(s.cfg.GreedyBudget),
				search.WithJumpCache(!s.cfg.NoJumpCache),
			)
			sample, ok := local.Plan(alg, snapshot, s.probe)
			results[i].sample = sample
			results[i].feasible = ok
			if cr, isCached := alg.(search.CacheReporter); isCached {
				results[i].cache = cr.Stats()
			}
			return nil
		})
	}
	// Tasks never return errors; Wait is the barrier.
	_ = eg.Wait()

	return results
}

// advance moves every agent one cell per tick until all stand on their
// goals. It runs on the calling goroutine only.
func (s *Simulator) advance(grid *terrain.Grid, agents []*agent.Agent, starts, goals []terrain.Point) (int, error) {
	board := newBoard(grid, starts, goals)
	for {
		done := true
		for _, a := range agents {
			if !a.GoalReached() {
				done = false
				break
			}
		}
		if done {
			return board.tick, nil
		}

		for i, a := range agents {
			if a.GoalReached() {
				continue
			}
			p, ok := a.Step()
			if !ok {
				return board.tick, fmt.Errorf("%w: agent %d at %v, goal %v", ErrStalled, i, a.Position, a.Goal)
			}
			board.move(i, p)
		}
		board.tick++
		s.onTick(board.tick, board)
	}
}
