package search

import (
	"strings"

	"github.com/katalvlaran/pathbench/astar"
	"github.com/katalvlaran/pathbench/bfs"
	"github.com/katalvlaran/pathbench/greedy"
	"github.com/katalvlaran/pathbench/jpsw"
	"github.com/katalvlaran/pathbench/terrain"
)

// New returns the algorithm registered under name, or Greedy when the name
// is unknown.
func New(name string, opts ...Option) Algorithm {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch normalize(name) {
	case "a*search", "a*", "astar":
		return aStar{}
	case "breadthfirstsearch", "bfs":
		return breadthFirst{}
	case "jpsw":
		// WithCache cannot fail.
		s, _ := jpsw.New(jpsw.WithCache(o.JumpCache))
		return &jumpPoint{s: s}
	default:
		gopts := []greedy.Option{greedy.WithBudget(o.GreedyBudget)}
		if o.Seed != 0 {
			gopts = append(gopts, greedy.WithSeed(o.Seed))
		}
		// the budget is positive here, so New cannot fail
		w, _ := greedy.New(gopts...)
		return &greedyWalk{w: w}
	}
}

// FindPath runs the named algorithm once and returns a full start→goal path.
func FindPath(name string, start, goal terrain.Point, g *terrain.Grid, opts ...Option) ([]terrain.Point, int) {
	alg := New(name, opts...)
	path, effort := alg.FindPath(start, goal, g)
	return Resolve(alg, path), effort
}

// Resolve expands path when alg returns waypoints only.
func Resolve(alg Algorithm, path []terrain.Point) []terrain.Point {
	if alg.ReturnsFullPath() || len(path) == 0 {
		return path
	}
	return alg.ReconstructPath(path)
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

type greedyWalk struct{ w *greedy.Walker }

func (a *greedyWalk) FindPath(start, goal terrain.Point, g *terrain.Grid) ([]terrain.Point, int) {
	res, err := a.w.Walk(g, start, goal)
	if err != nil {
		return nil, 0
	}
	return res.Path, res.Steps
}

func (*greedyWalk) ReturnsFullPath() bool { return true }
func (*greedyWalk) ReconstructPath(p []terrain.Point) []terrain.Point { return p }
func (*greedyWalk) Name() string { return NameGreedy }

type breadthFirst struct{}

func (breadthFirst) FindPath(start, goal terrain.Point, g *terrain.Grid) ([]terrain.Point, int) {
	res, err := bfs.Search(g, start, goal)
	if err != nil {
		return nil, 0
	}
	return res.Path, res.Expansions
}

func (breadthFirst) ReturnsFullPath() bool { return true }
func (breadthFirst) ReconstructPath(p []terrain.Point) []terrain.Point { return p }
func (breadthFirst) Name() string { return NameBFS }

type aStar struct{}

func (aStar) FindPath(start, goal terrain.Point, g *terrain.Grid) ([]terrain.Point, int) {
	res, err := astar.Search(g, start, goal)
	if err != nil {
		return nil, 0
	}
	return res.Path, res.Expansions
}

func (aStar) ReturnsFullPath() bool { return true }
func (aStar) ReconstructPath(p []terrain.Point) []terrain.Point { return p }
func (aStar) Name() string { return NameAStar }

type jumpPoint struct{ s *jpsw.Searcher }

func (a *jumpPoint) FindPath(start, goal terrain.Point, g *terrain.Grid) ([]terrain.Point, int) {
	res, err := a.s.Search(g, start, goal)
	if err != nil {
		return nil, 0
	}
	return res.Path, res.Expansions
}

func (*jumpPoint) ReturnsFullPath() bool { return false }

func (*jumpPoint) ReconstructPath(p []terrain.Point) []terrain.Point { return jpsw.Reconstruct(p) }

func (*jumpPoint) Name() string { return NameJPSW }

// Stats exposes the JPSW session's cache statistics.
func (a *jumpPoint) Stats() jpsw.Stats { return a.s.Stats() }
