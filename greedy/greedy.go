package greedy

import (
	"sort"

	"github.com/katalvlaran/pathbench/terrain"
)

// Walker runs greedy walks with fixed options. It keeps its random source
// across calls, so one Walker belongs to one goroutine.
type Walker struct {
	opts Options
}

// New validates opts and returns a Walker.
func New(opts ...Option) (*Walker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Walker{opts: o}, nil
}

// Walk is a one-shot helper around New and (*Walker).Walk.
func Walk(g *terrain.Grid, start, goal terrain.Point, opts ...Option) (*Result, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return w.Walk(g, start, goal)
}

// Walk moves from start toward goal until the goal is reached, the walker
// is stuck, or the step budget runs out.
func (w *Walker) Walk(g *terrain.Grid, start, goal terrain.Point) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	res := &Result{}
	if !g.IsTraversable(start) || !g.IsTraversable(goal) {
		return res, nil
	}

	maxSteps := w.opts.Budget * g.Len()
	current := start
	path := []terrain.Point{start}
	blacklist := make(map[terrain.Point]bool)

	for {
		res.Steps++
		if current == goal {
			res.Found = true
			res.Path = path
			return res, nil
		}
		if res.Steps >= maxSteps {
			return res, nil
		}

		here := manhattan(current, goal)
		var good, bad []terrain.Point
		for _, n := range g.Neighbors(current) {
			if blacklist[n] {
				continue
			}
			if manhattan(n, goal) < here {
				good = append(good, n)
			} else {
				bad = append(bad, n)
			}
		}

		switch {
		case len(good) > 0:
			sort.SliceStable(good, func(i, j int) bool {
				return manhattan(good[i], goal) < manhattan(good[j], goal)
			})
			current = good[0]
		case len(bad) > 0:
			blacklist[current] = true
			current = bad[w.opts.Rand.Intn(len(bad))]
		default:
			// dead end: every neighbor is blacklisted
			return res, nil
		}
		path = append(path, current)
	}
}

func manhattan(a, b terrain.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
