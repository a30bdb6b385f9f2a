package jpsw

import (
	"math"

	"github.com/katalvlaran/pathbench/terrain"
)

type succKey struct {
	arrival terrain.Direction
	sig     signature
}

type jumpKey struct {
	from terrain.Point
	dir  terrain.Direction
}

type jumpResult struct {
	to terrain.Point
	ok bool
}

// successorsAt returns the pruned directions at p, consulting the cache.
func (s *Searcher) successorsAt(p terrain.Point, arrival terrain.Direction) []terrain.Direction {
	sig := signatureAt(s.grid, p)
	if !s.opts.Cache {
		return successors(sig, arrival)
	}
	key := succKey{arrival: arrival, sig: sig}
	if dirs, ok := s.succ[key]; ok {
		s.stats.SuccessorHits++
		return dirs
	}
	s.stats.SuccessorMisses++
	dirs := successors(sig, arrival)
	s.succ[key] = dirs

	return dirs
}

// forced reports whether arriving at p along d leaves any successor outside
// the natural set.
func (s *Searcher) forced(p terrain.Point, d terrain.Direction) bool {
	for _, n := range s.successorsAt(p, d) {
		if n == d {
			continue
		}
		if d.IsDiagonal() && (n == d.Horizontal() || n == d.Vertical()) {
			continue
		}
		return true
	}
	return false
}

// jumpOrthogonal follows d from p until a jump point or a dead end.
func (s *Searcher) jumpOrthogonal(p terrain.Point, d terrain.Direction) (terrain.Point, bool) {
	if !s.opts.Cache {
		return s.scanOrthogonal(p, d)
	}
	key := jumpKey{from: p, dir: d}
	if r, ok := s.jumps[key]; ok {
		s.stats.JumpHits++
		return r.to, r.ok
	}
	s.stats.JumpMisses++
	to, ok := s.scanOrthogonal(p, d)
	s.jumps[key] = jumpResult{to: to, ok: ok}

	return to, ok
}

func (s *Searcher) scanOrthogonal(p terrain.Point, d terrain.Direction) (terrain.Point, bool) {
	origin := s.grid.Weight(p)
	cur := p
	for {
		next := cur.Add(d)
		if math.IsInf(s.grid.MoveCost(cur, next), 1) {
			return terrain.Point{}, false
		}
		cur = next
		if cur == s.goal || s.grid.Weight(cur) != origin || s.forced(cur, d) {
			return cur, true
		}
	}
}

// jumpDiagonal follows diagonal d from p until a jump point or a dead end.
func (s *Searcher) jumpDiagonal(p terrain.Point, d terrain.Direction) (terrain.Point, bool) {
	origin := s.grid.Weight(p)
	h, v := d.Horizontal(), d.Vertical()
	cur := p
	for {
		next := cur.Add(d)
		if math.IsInf(s.grid.MoveCost(cur, next), 1) {
			return terrain.Point{}, false
		}
		cur = next
		if cur == s.goal || s.grid.Weight(cur) != origin || s.forced(cur, d) {
			return cur, true
		}
		if _, ok := s.jumpOrthogonal(cur, h); ok {
			return cur, true
		}
		if _, ok := s.jumpOrthogonal(cur, v); ok {
			return cur, true
		}
	}
}

// legCost sums MoveCost along the straight segment a→b.
func (s *Searcher) legCost(a, b terrain.Point) float64 {
	total := 0.0
	for cur := a; cur != b; {
		next := cur.Add(terrain.DirectionBetween(cur, b))
		total += s.grid.MoveCost(cur, next)
		cur = next
	}
	return total
}
