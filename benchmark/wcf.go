package benchmark

import (
	"math"

	"github.com/katalvlaran/pathbench/terrain"
)

// weightFactor scales each cell's log-gradient contribution.
const weightFactor = 0.01

var (
	kernelX = [3][3]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	kernelY = [3][3]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
)

// Gradient returns the Sobel gradient magnitude at p, counting only
// traversable cells of the 3×3 block. It is 0 for blocked or absent p.
func Gradient(g *terrain.Grid, p terrain.Point) float64 {
	if !g.IsTraversable(p) {
		return 0
	}
	gx, gy := 0, 0
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			w := int(g.Weight(terrain.Point{X: p.X + col - 1, Y: p.Y + row - 1}))
			gx += w * kernelX[row][col]
			gy += w * kernelY[row][col]
		}
	}

	return math.Sqrt(float64(gx*gx + gy*gy))
}

// WCF returns the weighted complexity factor of g, or 0 when g has no
// traversable cell. Cells are visited in row-major order so the result is
// bit-for-bit reproducible.
func WCF(g *terrain.Grid) float64 {
	traversable := 0
	sum := 0.0
	for _, p := range g.Points() {
		if !g.IsTraversable(p) {
			continue
		}
		traversable++
		if grad := Gradient(g, p); grad != 0 {
			sum += 1 - weightFactor*math.Log2(grad)
		}
	}
	if traversable == 0 {
		return 0
	}

	return sum / float64(traversable)
}
