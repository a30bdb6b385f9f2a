package astar_test

import (
	"testing"

	"github.com/katalvlaran/pathbench/astar"
	"github.com/katalvlaran/pathbench/terrain"
)

// BenchmarkSearch_Weighted measures A* on a generated 64×64 weighted terrain.
func BenchmarkSearch_Weighted(b *testing.B) {
	start, goal := terrain.Point{}, terrain.Point{X: 63, Y: 63}
	gen, _ := terrain.NewGenerator(64, 64, 5)
	g, _ := gen.Generate(terrain.GenerateRequest{
		Obstacles: 600, Weighted: 1200, WeightRange: 20, Agents: 1,
		Reserved: []terrain.Point{start, goal},
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, goal)
	}
}
