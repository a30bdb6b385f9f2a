package jpsw

import (
	"math"

	"github.com/katalvlaran/pathbench/terrain"
)

const eps = 1e-9

// signature is the 3×3 block of weights around a cell, row-major, with 0
// standing for a blocked or absent cell. Index 4 is the centre.
type signature [9]uint8

func index(d terrain.Direction) int { return (d.DY+1)*3 + (d.DX + 1) }

func offset(i int) terrain.Direction { return terrain.Direction{DX: i%3 - 1, DY: i/3 - 1} }

func signatureAt(g *terrain.Grid, p terrain.Point) signature {
	var s signature
	for i := range s {
		s[i] = g.Weight(p.Add(offset(i)))
	}
	return s
}

// localCost is the move cost between two adjacent slots of the block.
func (s signature) localCost(a, b int) float64 {
	da, db := offset(a), offset(b)
	step := terrain.Direction{DX: db.DX - da.DX, DY: db.DY - da.DY}
	if step.IsZero() || step.DX < -1 || step.DX > 1 || step.DY < -1 || step.DY > 1 {
		return math.Inf(1)
	}
	if !step.IsDiagonal() {
		return terrain.OrthogonalCost(s[a], s[b])
	}
	h := index(terrain.Direction{DX: da.DX + step.DX, DY: da.DY})
	v := index(terrain.Direction{DX: da.DX, DY: da.DY + step.DY})

	return terrain.DiagonalCost(s[a], s[b], s[h], s[v])
}

// detour returns, for every slot, the cheapest cost from slot src that
// never visits the centre. The centre may still act as a side cell of a
// diagonal move.
func (s signature) detour(src int) [9]float64 {
	var (
		dist [9]float64
		done [9]bool
	)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0
	done[4] = true

	for {
		u := -1
		for i := range dist {
			if !done[i] && !math.IsInf(dist[i], 1) && (u < 0 || dist[i] < dist[u]) {
				u = i
			}
		}
		if u < 0 {
			return dist
		}
		done[u] = true
		for v := range dist {
			if done[v] {
				continue
			}
			if c := s.localCost(u, v); dist[u]+c < dist[v] {
				dist[v] = dist[u] + c
			}
		}
	}
}

// successors returns the directions worth exploring from the centre of s
// after arriving along arrival. A zero arrival marks the start cell.
func successors(s signature, arrival terrain.Direction) []terrain.Direction {
	out := make([]terrain.Direction, 0, 8)
	if arrival.IsZero() {
		for _, d := range terrain.Directions {
			if !math.IsInf(s.localCost(4, index(d)), 1) {
				out = append(out, d)
			}
		}
		return out
	}

	parent := index(terrain.Direction{DX: -arrival.DX, DY: -arrival.DY})
	in := s.localCost(parent, 4)
	if math.IsInf(in, 1) {
		return out
	}
	alt := s.detour(parent)
	for _, d := range terrain.Directions {
		n := index(d)
		if n == parent {
			continue
		}
		outCost := s.localCost(4, n)
		if math.IsInf(outCost, 1) {
			continue
		}
		via := in + outCost
		if arrival.IsDiagonal() {
			if alt[n] < via-eps {
				continue
			}
		} else if alt[n] <= via+eps {
			continue
		}
		out = append(out, d)
	}

	return out
}
