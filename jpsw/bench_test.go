package jpsw_test

import (
	"testing"

	"github.com/katalvlaran/pathbench/jpsw"
	"github.com/katalvlaran/pathbench/terrain"
)

func benchmarkSearch(b *testing.B, cache bool) {
	start, goal := terrain.Point{}, terrain.Point{X: 63, Y: 63}
	gen, _ := terrain.NewGenerator(64, 64, 11)
	g, _ := gen.Generate(terrain.GenerateRequest{
		Obstacles: 400, Weighted: 400, WeightRange: 4, Agents: 1,
		Reserved: []terrain.Point{start, goal},
	})
	s, _ := jpsw.New(jpsw.WithCache(cache))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Search(g, start, goal)
	}
}

// BenchmarkSearch_Cached reuses one session, so caches stay warm.
func BenchmarkSearch_Cached(b *testing.B) { benchmarkSearch(b, true) }

// BenchmarkSearch_Uncached recomputes every successor set and jump.
func BenchmarkSearch_Uncached(b *testing.B) { benchmarkSearch(b, false) }
