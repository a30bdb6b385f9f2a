package jpsw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathbench/astar"
	"github.com/katalvlaran/pathbench/jpsw"
	"github.com/katalvlaran/pathbench/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// octileOptimum is a plain Dijkstra over terrain.Grid.MoveCost, used as a
// reference for the cost JPSW must reach.
func octileOptimum(g *terrain.Grid, start, goal terrain.Point) float64 {
	dist := map[terrain.Point]float64{start: 0}
	done := map[terrain.Point]bool{}
	for {
		var (
			u     terrain.Point
			found bool
		)
		for p, d := range dist {
			if done[p] {
				continue
			}
			if !found || d < dist[u] || (d == dist[u] && (p.Y < u.Y || (p.Y == u.Y && p.X < u.X))) {
				u, found = p, true
			}
		}
		if !found {
			return math.Inf(1)
		}
		if u == goal {
			return dist[u]
		}
		done[u] = true
		for _, d := range terrain.Directions {
			v := u.Add(d)
			c := g.MoveCost(u, v)
			if math.IsInf(c, 1) {
				continue
			}
			if old, ok := dist[v]; !ok || dist[u]+c < old {
				dist[v] = dist[u] + c
			}
		}
	}
}

func assertContiguous(t *testing.T, g *terrain.Grid, path []terrain.Point) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		assert.False(t, math.IsInf(g.MoveCost(path[i-1], path[i]), 1), "step %d %v→%v is not a legal move", i, path[i-1], path[i])
	}
}

// TestSearch_Errors verifies nil grid and option validation.
func TestSearch_Errors(t *testing.T) {
	s, err := jpsw.New()
	require.NoError(t, err)
	_, err = s.Search(nil, terrain.Point{}, terrain.Point{})
	assert.ErrorIs(t, err, jpsw.ErrNilGrid)

	_, err = jpsw.New(jpsw.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, jpsw.ErrOptionViolation)
}

// TestSearch_Uniform5x5 jumps straight along the diagonal.
func TestSearch_Uniform5x5(t *testing.T) {
	g, err := terrain.Uniform(5, 5, 1)
	require.NoError(t, err)
	s, err := jpsw.New()
	require.NoError(t, err)

	res, err := s.Search(g, terrain.Point{}, terrain.Point{X: 4, Y: 4})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []terrain.Point{{X: 0, Y: 0}, {X: 4, Y: 4}}, res.Path)
	assert.InDelta(t, 4*math.Sqrt2, res.Cost, 1e-9)

	full := jpsw.Reconstruct(res.Path)
	assert.Len(t, full, 5)
	assert.Equal(t, 8, g.PathCost(full))
}

// TestSearch_StartIsGoal returns the single cell.
func TestSearch_StartIsGoal(t *testing.T) {
	g, err := terrain.Uniform(3, 3, 1)
	require.NoError(t, err)
	s, err := jpsw.New()
	require.NoError(t, err)
	res, err := s.Search(g, terrain.Point{X: 1, Y: 1}, terrain.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []terrain.Point{{X: 1, Y: 1}}, res.Path)
	assert.Equal(t, 1, res.Expansions)
	assert.Equal(t, []terrain.Point{{X: 1, Y: 1}}, jpsw.Reconstruct(res.Path))
}

// TestSearch_Unreachable fails cleanly behind a wall.
func TestSearch_Unreachable(t *testing.T) {
	g, err := terrain.FromRows([][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 0, 1},
	})
	require.NoError(t, err)
	s, err := jpsw.New()
	require.NoError(t, err)
	res, err := s.Search(g, terrain.Point{}, terrain.Point{X: 2, Y: 2})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Nil(t, jpsw.Reconstruct(res.Path))
}

// TestSearch_MatchesAStarOnUniformTerrain compares reconstructed path cost
// with A* on obstacle-free grids of several weights and shapes.
func TestSearch_MatchesAStarOnUniformTerrain(t *testing.T) {
	cases := []struct {
		w, h   int
		weight uint8
		start  terrain.Point
		goal   terrain.Point
	}{
		{5, 5, 1, terrain.Point{X: 0, Y: 0}, terrain.Point{X: 4, Y: 4}},
		{8, 3, 1, terrain.Point{X: 0, Y: 1}, terrain.Point{X: 7, Y: 0}},
		{10, 10, 3, terrain.Point{X: 9, Y: 0}, terrain.Point{X: 2, Y: 7}},
		{12, 6, 7, terrain.Point{X: 5, Y: 5}, terrain.Point{X: 0, Y: 0}},
		{1, 9, 2, terrain.Point{X: 0, Y: 8}, terrain.Point{X: 0, Y: 0}},
	}
	for _, tc := range cases {
		g, err := terrain.Uniform(tc.w, tc.h, tc.weight)
		require.NoError(t, err)
		s, err := jpsw.New()
		require.NoError(t, err)

		j, err := s.Search(g, tc.start, tc.goal)
		require.NoError(t, err)
		a, err := astar.Search(g, tc.start, tc.goal)
		require.NoError(t, err)
		require.True(t, j.Found)
		require.True(t, a.Found)

		full := jpsw.Reconstruct(j.Path)
		assert.Equal(t, tc.start, full[0])
		assert.Equal(t, tc.goal, full[len(full)-1])
		assertContiguous(t, g, full)
		assert.Equal(t, a.Cost, g.PathCost(full), "%dx%d %v→%v", tc.w, tc.h, tc.start, tc.goal)
	}
}

// TestSearch_OptimalWithObstacles checks JPSW against a reference Dijkstra
// on uniform-weight terrains with random obstacles.
func TestSearch_OptimalWithObstacles(t *testing.T) {
	start, goal := terrain.Point{}, terrain.Point{X: 15, Y: 11}
	for seed := int64(1); seed <= 20; seed++ {
		gen, err := terrain.NewGenerator(16, 12, seed)
		require.NoError(t, err)
		g, err := gen.Generate(terrain.GenerateRequest{
			Obstacles: 50, Agents: 1, Reserved: []terrain.Point{start, goal},
		})
		require.NoError(t, err)
		s, err := jpsw.New()
		require.NoError(t, err)

		res, err := s.Search(g, start, goal)
		require.NoError(t, err)
		want := octileOptimum(g, start, goal)
		if math.IsInf(want, 1) {
			assert.False(t, res.Found, "seed %d", seed)
			continue
		}
		require.True(t, res.Found, "seed %d", seed)
		assert.InDelta(t, want, res.Cost, 1e-6, "seed %d", seed)
		assertContiguous(t, g, jpsw.Reconstruct(res.Path))
	}
}

// TestSearch_CacheDoesNotChangeResults runs weighted terrains with and
// without caching and expects identical output.
func TestSearch_CacheDoesNotChangeResults(t *testing.T) {
	start, goal := terrain.Point{X: 1, Y: 1}, terrain.Point{X: 18, Y: 13}
	cached, err := jpsw.New()
	require.NoError(t, err)
	plain, err := jpsw.New(jpsw.WithCache(false))
	require.NoError(t, err)

	for seed := int64(1); seed <= 15; seed++ {
		gen, err := terrain.NewGenerator(20, 15, seed)
		require.NoError(t, err)
		g, err := gen.Generate(terrain.GenerateRequest{
			Obstacles: 40, Weighted: 60, WeightRange: 6, Agents: 1,
			Reserved: []terrain.Point{start, goal},
		})
		require.NoError(t, err)

		a, err := cached.Search(g, start, goal)
		require.NoError(t, err)
		b, err := plain.Search(g, start, goal)
		require.NoError(t, err)
		assert.Equal(t, b, a, "seed %d", seed)
		if a.Found {
			assertContiguous(t, g, jpsw.Reconstruct(a.Path))
		}
	}
	assert.Zero(t, plain.Stats())
	assert.Positive(t, cached.Stats().SuccessorMisses)
}

// TestSearcher_CacheBinding shows that repeated searches on one grid reuse
// the caches and a new grid starts cold.
func TestSearcher_CacheBinding(t *testing.T) {
	g, err := terrain.Uniform(30, 30, 1)
	require.NoError(t, err)
	s, err := jpsw.New()
	require.NoError(t, err)

	_, err = s.Search(g, terrain.Point{}, terrain.Point{X: 29, Y: 17})
	require.NoError(t, err)
	first := s.Stats()

	_, err = s.Search(g, terrain.Point{}, terrain.Point{X: 29, Y: 17})
	require.NoError(t, err)
	second := s.Stats()
	assert.Equal(t, first.JumpMisses, second.JumpMisses, "same grid and goal: every jump is a hit")
	assert.Equal(t, first.SuccessorMisses, second.SuccessorMisses)
	assert.Greater(t, second.JumpHits, first.JumpHits)

	_, err = s.Search(g.Clone(), terrain.Point{}, terrain.Point{X: 29, Y: 17})
	require.NoError(t, err)
	third := s.Stats()
	assert.Greater(t, third.SuccessorMisses, second.SuccessorMisses, "a new snapshot starts cold")
}

// TestReconstruct covers leg interpolation.
func TestReconstruct(t *testing.T) {
	got := jpsw.Reconstruct([]terrain.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 5, Y: 2}})
	assert.Equal(t, []terrain.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 2},
	}, got)
}
