package terrain

import (
	"errors"
	"math/rand"
)

// ErrBadWeightRange indicates a weighted tile request with WeightRange 0.
var ErrBadWeightRange = errors.New("terrain: weight range must be positive when weighted tiles are requested")

// GenerateRequest describes one random terrain snapshot.
type GenerateRequest struct {
	// Obstacles is the requested obstacle count, capped at
	// cells / (2 × max(1, Agents)).
	Obstacles int
	// Weighted is the number of floor tiles given a random weight.
	Weighted int
	// WeightRange bounds random weights to 1..WeightRange.
	WeightRange uint8
	// Agents is the number of agents the terrain must host.
	Agents int
	// Reserved cells (agent starts and goals) always stay weight-1 floor.
	Reserved []Point
}

// Generator produces random rectangular terrains of a fixed size.
// It is not safe for concurrent use; the simulation calls it from the
// coordinating goroutine only.
type Generator struct {
	width, height int
	rng           *rand.Rand
}

// NewGenerator returns a Generator for width×height terrains seeded with seed.
// Returns ErrBadDimensions for non-positive sizes.
func NewGenerator(width, height int, seed int64) (*Generator, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	return &Generator{
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Size returns the generator's width and height.
func (gen *Generator) Size() (width, height int) {
	return gen.width, gen.height
}

// Generate builds a fresh terrain snapshot.
//
// Steps:
//  1. Lay out a uniform weight-1 floor.
//  2. Cap the obstacle count by the per-agent density limit.
//  3. Draw Obstacles+Weighted distinct non-reserved cells in one pass.
//  4. Turn the first Obstacles draws into obstacles and weight the rest.
func (gen *Generator) Generate(req GenerateRequest) (*Grid, error) {
	if req.Weighted > 0 && req.WeightRange == 0 {
		return nil, ErrBadWeightRange
	}

	reserved := make(map[Point]struct{}, len(req.Reserved))
	for _, p := range req.Reserved {
		reserved[p] = struct{}{}
	}

	total := gen.width * gen.height
	cells := make(map[Point]Cell, total)
	free := make([]Point, 0, total)
	for y := 0; y < gen.height; y++ {
		for x := 0; x < gen.width; x++ {
			p := Point{X: x, Y: y}
			cells[p] = Floor(1)
			if _, ok := reserved[p]; !ok {
				free = append(free, p)
			}
		}
	}

	agents := req.Agents
	if agents < 1 {
		agents = 1
	}
	obstacles := clamp(req.Obstacles, 0, total/(2*agents))
	special := clamp(obstacles+max(req.Weighted, 0), 0, len(free))

	// Partial Fisher-Yates: the first `special` entries become a uniform
	// sample without replacement.
	for i := 0; i < special; i++ {
		j := i + gen.rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]
	}
	for i := 0; i < special; i++ {
		p := free[i]
		if i < obstacles {
			cells[p] = Obstacle()
			continue
		}
		cells[p] = Floor(uint8(1 + gen.rng.Intn(int(req.WeightRange))))
	}

	return NewGrid(cells)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
