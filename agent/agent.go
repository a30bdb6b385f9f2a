package agent

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pathbench/benchmark"
	"github.com/katalvlaran/pathbench/bfs"
	"github.com/katalvlaran/pathbench/search"
	"github.com/katalvlaran/pathbench/terrain"
)

// ErrCountMismatch is returned when starts and goals differ in length.
var ErrCountMismatch = errors.New("agent: starts and goals must have the same length")

// DefaultProbeFactor bounds the reachability probe to factor × |cells| dequeues.
const DefaultProbeFactor = 10

// Agent is one mover on the terrain.
type Agent struct {
	Start    terrain.Point
	Goal     terrain.Point
	Position terrain.Point

	// path is a stack; path[len(path)-1] is the next cell to enter.
	path []terrain.Point
}

// New returns an agent standing on start.
func New(start, goal terrain.Point) *Agent {
	return &Agent{Start: start, Goal: goal, Position: start}
}

// NewAgents pairs starts[i] with goals[i].
func NewAgents(starts, goals []terrain.Point) ([]*Agent, error) {
	if len(starts) != len(goals) {
		return nil, fmt.Errorf("%w: %d starts, %d goals", ErrCountMismatch, len(starts), len(goals))
	}
	out := make([]*Agent, len(starts))
	for i := range starts {
		out[i] = New(starts[i], goals[i])
	}
	return out, nil
}

// IsPathPossible probes reachability from Start to Goal with a breadth-first
// search capped at DefaultProbeFactor × |cells| dequeues.
func (a *Agent) IsPathPossible(g *terrain.Grid) bool {
	return a.IsPathPossibleWithin(g, DefaultProbeFactor)
}

// IsPathPossibleWithin is IsPathPossible with an explicit cap factor.
// A non-positive factor falls back to DefaultProbeFactor.
func (a *Agent) IsPathPossibleWithin(g *terrain.Grid, factor int) bool {
	if a.Start == a.Goal {
		return true
	}
	if factor <= 0 {
		factor = DefaultProbeFactor
	}
	return bfs.Reachable(g, a.Start, a.Goal, factor*g.Len())
}

// Plan runs alg from Start to Goal on g, stores the resulting route and
// returns the measured sample. The memory probe is read immediately around
// the search call; waypoint output is expanded afterwards, outside the
// measured window. ok is false when no route was found, in which case the
// stored route is left empty.
func (a *Agent) Plan(alg search.Algorithm, g *terrain.Grid, probe benchmark.MemoryProbe) (s benchmark.Sample, ok bool) {
	if probe == nil {
		probe = benchmark.NopProbe{}
	}

	began := time.Now()
	before := probe.Allocated()
	path, effort := alg.FindPath(a.Start, a.Goal, g)
	after := probe.Allocated()
	elapsed := time.Since(began)

	path = search.Resolve(alg, path)
	a.SetPath(path)

	s = benchmark.Sample{
		WCF:      benchmark.WCF(g),
		Memory:   benchmark.Delta(before, after),
		Elapsed:  elapsed,
		Steps:    effort,
		PathCost: g.PathCost(path),
	}

	return s, len(path) > 0
}

// SetPath replaces the route with a start→goal path.
func (a *Agent) SetPath(path []terrain.Point) {
	a.path = a.path[:0]
	for i := len(path) - 1; i >= 1; i-- {
		a.path = append(a.path, path[i])
	}
}

// Next peeks at the next cell without moving.
func (a *Agent) Next() (terrain.Point, bool) {
	if len(a.path) == 0 {
		return terrain.Point{}, false
	}
	return a.path[len(a.path)-1], true
}

// Step pops the next cell and moves onto it.
func (a *Agent) Step() (terrain.Point, bool) {
	p, ok := a.Next()
	if !ok {
		return p, false
	}
	a.path = a.path[:len(a.path)-1]
	a.Position = p
	return p, true
}

// Remaining returns the number of cells left to enter.
func (a *Agent) Remaining() int { return len(a.path) }

// GoalReached reports whether the agent stands on its goal.
func (a *Agent) GoalReached() bool { return a.Position == a.Goal }

// Reset returns the agent to Start and forgets its route.
func (a *Agent) Reset() {
	a.Position = a.Start
	a.path = a.path[:0]
}
