package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain construction.
var (
	// ErrEmptyGrid indicates a grid without any cell.
	ErrEmptyGrid = errors.New("terrain: grid must contain at least one cell")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrBadWeight indicates a weight outside the 1..255 range.
	ErrBadWeight = errors.New("terrain: weight must be within 1..255")
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("terrain: width and height must be positive")
)

// MaxWeight is the largest weight a cell can carry.
const MaxWeight = 255

// Point identifies a cell by its integer coordinates.
type Point struct {
	X, Y int
}

// Add returns p moved by one step in direction d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Sub returns p moved one step against direction d.
func (p Point) Sub(d Direction) Point {
	return Point{X: p.X - d.DX, Y: p.Y - d.DY}
}

// String formats the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Direction is a unit step between adjacent cells. DX and DY are in {-1,0,1}.
type Direction struct {
	DX, DY int
}

// The eight compass directions. Y grows downward.
var (
	North     = Direction{0, -1}
	NorthEast = Direction{1, -1}
	East      = Direction{1, 0}
	SouthEast = Direction{1, 1}
	South     = Direction{0, 1}
	SouthWest = Direction{-1, 1}
	West      = Direction{-1, 0}
	NorthWest = Direction{-1, -1}
)

// Directions lists all eight directions in clockwise order starting at North.
// Every traversal in pathbench iterates neighbors in this order.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// IsZero reports whether d is the zero offset (no direction).
func (d Direction) IsZero() bool { return d.DX == 0 && d.DY == 0 }

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool { return d.DX != 0 && d.DY != 0 }

// Horizontal returns the X component of d as a direction.
func (d Direction) Horizontal() Direction { return Direction{DX: d.DX} }

// Vertical returns the Y component of d as a direction.
func (d Direction) Vertical() Direction { return Direction{DY: d.DY} }

// DirectionBetween returns the unit direction pointing from a toward b.
// It is the zero Direction when a == b.
func DirectionBetween(a, b Point) Direction {
	return Direction{DX: sign(b.X - a.X), DY: sign(b.Y - a.Y)}
}

// Cell is a single terrain unit.
type Cell struct {
	// Traversable is false for obstacles.
	Traversable bool
	// Weight is the traversal cost multiplier, 1..255.
	Weight uint8
}

// Floor returns a traversable cell of the given weight (0 is raised to 1).
func Floor(weight uint8) Cell {
	return Cell{Traversable: true, Weight: normalizeWeight(weight)}
}

// Obstacle returns a non-traversable cell.
func Obstacle() Cell {
	return Cell{Traversable: false, Weight: 1}
}

// IsTraversable reports whether agents may enter the cell.
func (c Cell) IsTraversable() bool { return c.Traversable }

func normalizeWeight(w uint8) uint8 {
	if w == 0 {
		return 1
	}
	return w
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
