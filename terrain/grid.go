package terrain

import (
	"fmt"
	"sort"
)

// Grid is an immutable mapping from Point to Cell. Keys are unique and carry
// no iteration order; Points returns them in a deterministic row-major order.
//
// A Grid is safe for concurrent reads. Searches that must not share memory
// with other goroutines work on a Clone.
type Grid struct {
	cells    map[Point]Cell
	min, max Point
}

// NewGrid builds a Grid from a cell map. The map is deep-copied so later
// mutation by the caller cannot leak into the snapshot. Zero weights are
// normalized to 1.
// Returns ErrEmptyGrid when cells is empty.
// Complexity: O(N) time and memory.
func NewGrid(cells map[Point]Cell) (*Grid, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{cells: make(map[Point]Cell, len(cells))}
	first := true
	for p, c := range cells {
		c.Weight = normalizeWeight(c.Weight)
		g.cells[p] = c
		if first {
			g.min, g.max = p, p
			first = false
			continue
		}
		g.extend(p)
	}

	return g, nil
}

// FromRows builds a rectangular Grid from rows[y][x]. A value <= 0 marks an
// obstacle; 1..255 is the weight of a traversable cell.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadWeight (wrapped with the
// offending coordinate).
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	cells := make(map[Point]Cell, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, v := range row {
			switch {
			case v <= 0:
				cells[Point{x, y}] = Obstacle()
			case v > MaxWeight:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadWeight, v, x, y)
			default:
				cells[Point{x, y}] = Floor(uint8(v))
			}
		}
	}

	return NewGrid(cells)
}

// Uniform builds a width×height grid of traversable cells sharing one weight.
// Returns ErrBadDimensions for non-positive sizes.
func Uniform(width, height int, weight uint8) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	cells := make(map[Point]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[Point{x, y}] = Floor(weight)
		}
	}

	return NewGrid(cells)
}

func (g *Grid) extend(p Point) {
	if p.X < g.min.X {
		g.min.X = p.X
	}
	if p.Y < g.min.Y {
		g.min.Y = p.Y
	}
	if p.X > g.max.X {
		g.max.X = p.X
	}
	if p.Y > g.max.Y {
		g.max.Y = p.Y
	}
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

// Cell returns the cell at p and whether it exists.
func (g *Grid) Cell(p Point) (Cell, bool) {
	if g == nil {
		return Cell{}, false
	}
	c, ok := g.cells[p]
	return c, ok
}

// Contains reports whether p is part of the grid.
func (g *Grid) Contains(p Point) bool {
	_, ok := g.Cell(p)
	return ok
}

// IsTraversable reports whether p exists and is not an obstacle.
func (g *Grid) IsTraversable(p Point) bool {
	c, ok := g.Cell(p)
	return ok && c.IsTraversable()
}

// Weight returns the weight at p, or 0 when p is absent or blocked.
// The zero value doubles as the "blocked" marker in the cost helpers.
func (g *Grid) Weight(p Point) uint8 {
	c, ok := g.Cell(p)
	if !ok || !c.IsTraversable() {
		return 0
	}
	return c.Weight
}

// Bounds returns the smallest and largest coordinates present in the grid.
func (g *Grid) Bounds() (min, max Point) {
	return g.min, g.max
}

// Points returns every coordinate sorted by row, then column.
// Complexity: O(N log N).
func (g *Grid) Points() []Point {
	if g == nil {
		return nil
	}
	pts := make([]Point, 0, len(g.cells))
	for p := range g.cells {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})

	return pts
}

// Clone returns an independent copy of the grid.
// Complexity: O(N) time and memory.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	cells := make(map[Point]Cell, len(g.cells))
	for p, c := range g.cells {
		cells[p] = c
	}

	return &Grid{cells: cells, min: g.min, max: g.max}
}

// TraversableCount returns the number of non-obstacle cells.
func (g *Grid) TraversableCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, c := range g.cells {
		if c.IsTraversable() {
			n++
		}
	}
	return n
}
