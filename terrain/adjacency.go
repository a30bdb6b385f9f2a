package terrain

import "math"

// Neighbors returns the cells reachable from p in one move under the
// corner-cutting rule, in Directions order.
//
// Steps:
//  1. Every present, traversable neighbor is a candidate.
//  2. A present, blocked neighbor is excluded; when it lies orthogonally,
//     the two cells flanking it (neighbor ± perpendicular unit) are excluded too.
//  3. Absent cells neither qualify nor block.
//
// Complexity: O(8).
func (g *Grid) Neighbors(p Point) []Point {
	var (
		candidate [8]bool
		excluded  [8]bool
	)
	for i, d := range Directions {
		c, ok := g.Cell(p.Add(d))
		if !ok {
			continue
		}
		if c.IsTraversable() {
			candidate[i] = true
			continue
		}
		excluded[i] = true
		if !d.IsDiagonal() {
			// Orthogonal directions sit at even indices; the diagonals on
			// either side of them are the flanking cells.
			excluded[(i+1)%8] = true
			excluded[(i+7)%8] = true
		}
	}

	out := make([]Point, 0, 8)
	for i, d := range Directions {
		if candidate[i] && !excluded[i] {
			out = append(out, p.Add(d))
		}
	}

	return out
}

// OrthogonalCost is the cost of an orthogonal move between cells of weights
// a and b: their mean. A zero weight means blocked and yields +Inf.
func OrthogonalCost(a, b uint8) float64 {
	if a == 0 || b == 0 {
		return math.Inf(1)
	}
	return (float64(a) + float64(b)) / 2
}

// DiagonalCost is the cost of a diagonal move from a weight-a cell to a
// weight-b cell whose two side cells weigh s1 and s2: the mean of the 2×2
// block scaled by √2. Any zero weight yields +Inf, which forbids corner
// cutting.
func DiagonalCost(a, b, s1, s2 uint8) float64 {
	if a == 0 || b == 0 || s1 == 0 || s2 == 0 {
		return math.Inf(1)
	}
	sum := float64(a) + float64(b) + float64(s1) + float64(s2)
	return sum / 4 * math.Sqrt2
}

// MoveCost returns the real-valued cost of moving from one cell to an
// adjacent one. Non-adjacent pairs, and moves touching an absent or blocked
// cell, cost +Inf.
func (g *Grid) MoveCost(from, to Point) float64 {
	dx, dy := to.X-from.X, to.Y-from.Y
	if abs(dx) > 1 || abs(dy) > 1 || (dx == 0 && dy == 0) {
		return math.Inf(1)
	}
	d := Direction{DX: dx, DY: dy}
	if !d.IsDiagonal() {
		return OrthogonalCost(g.Weight(from), g.Weight(to))
	}

	return DiagonalCost(
		g.Weight(from),
		g.Weight(to),
		g.Weight(from.Add(d.Horizontal())),
		g.Weight(from.Add(d.Vertical())),
	)
}

// StepCost returns the integer cost of one move: the destination weight
// times the Manhattan length of the step, so a diagonal counts twice.
// A blocked or absent destination contributes zero.
func (g *Grid) StepCost(from, to Point) int {
	return int(g.Weight(to)) * (abs(to.X-from.X) + abs(to.Y-from.Y))
}

// PathCost sums StepCost over consecutive cells of path. The start cell
// itself is free. Empty and single-cell paths cost 0.
func (g *Grid) PathCost(path []Point) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += g.StepCost(path[i-1], path[i])
	}
	return total
}

// HasEdge reports whether b is one of a's pruned neighbors.
func (g *Grid) HasEdge(a, b Point) bool {
	for _, n := range g.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}
