package terrain_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathbench/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestFromRows_Errors verifies that FromRows rejects empty, ragged and out-of-range inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, terrain.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, terrain.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, terrain.ErrNonRectangular},
		{"WeightTooLarge", [][]int{{1, 256}}, terrain.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.FromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestFromRows_Cells checks obstacle and weight decoding.
func TestFromRows_Cells(t *testing.T) {
	g, err := terrain.FromRows([][]int{
		{1, 0, 7},
		{-3, 255, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, g.Len())
	assert.True(t, g.IsTraversable(terrain.Point{X: 0, Y: 0}))
	assert.False(t, g.IsTraversable(terrain.Point{X: 1, Y: 0}))
	assert.False(t, g.IsTraversable(terrain.Point{X: 0, Y: 1}))
	assert.Equal(t, uint8(7), g.Weight(terrain.Point{X: 2, Y: 0}))
	assert.Equal(t, uint8(255), g.Weight(terrain.Point{X: 1, Y: 1}))
	assert.Equal(t, uint8(0), g.Weight(terrain.Point{X: 1, Y: 0}), "blocked cells report weight 0")
	assert.False(t, g.IsTraversable(terrain.Point{X: 9, Y: 9}), "absent cells are not traversable")
	assert.Equal(t, 4, g.TraversableCount())
}

// TestNewGrid_CopiesAndNormalizes ensures the input map is not aliased and weight 0 becomes 1.
func TestNewGrid_CopiesAndNormalizes(t *testing.T) {
	src := map[terrain.Point]terrain.Cell{
		{X: 0, Y: 0}: {Traversable: true, Weight: 0},
		{X: 1, Y: 0}: terrain.Floor(3),
	}
	g, err := terrain.NewGrid(src)
	require.NoError(t, err)

	src[terrain.Point{X: 1, Y: 0}] = terrain.Obstacle()
	assert.True(t, g.IsTraversable(terrain.Point{X: 1, Y: 0}))
	assert.Equal(t, uint8(1), g.Weight(terrain.Point{X: 0, Y: 0}))

	_, err = terrain.NewGrid(nil)
	assert.ErrorIs(t, err, terrain.ErrEmptyGrid)
}

// TestUniform covers dimensions and bounds.
func TestUniform(t *testing.T) {
	_, err := terrain.Uniform(0, 3, 1)
	assert.ErrorIs(t, err, terrain.ErrBadDimensions)

	g, err := terrain.Uniform(4, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Len())
	lo, hi := g.Bounds()
	assert.Equal(t, terrain.Point{X: 0, Y: 0}, lo)
	assert.Equal(t, terrain.Point{X: 3, Y: 2}, hi)
}

// TestPoints_RowMajor verifies the deterministic ordering of Points.
func TestPoints_RowMajor(t *testing.T) {
	g, err := terrain.Uniform(2, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []terrain.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, g.Points())
}

// TestClone_Independent checks that a clone has equal contents and a distinct identity.
func TestClone_Independent(t *testing.T) {
	g, err := terrain.FromRows([][]int{{1, 0}, {2, 3}})
	require.NoError(t, err)
	c := g.Clone()

	assert.NotSame(t, g, c)
	assert.Equal(t, g.Points(), c.Points())
	for _, p := range g.Points() {
		a, _ := g.Cell(p)
		b, _ := c.Cell(p)
		assert.Equal(t, a, b, "cell %v", p)
	}

	var nilGrid *terrain.Grid
	assert.Nil(t, nilGrid.Clone())
	assert.Equal(t, 0, nilGrid.Len())
}

// TestDirectionHelpers covers the small Direction API.
func TestDirectionHelpers(t *testing.T) {
	assert.True(t, terrain.NorthEast.IsDiagonal())
	assert.False(t, terrain.East.IsDiagonal())
	assert.Equal(t, terrain.East, terrain.SouthEast.Horizontal())
	assert.Equal(t, terrain.South, terrain.SouthEast.Vertical())
	assert.Equal(t, terrain.NorthWest, terrain.DirectionBetween(terrain.Point{X: 5, Y: 5}, terrain.Point{X: 1, Y: 2}))
	assert.True(t, terrain.DirectionBetween(terrain.Point{}, terrain.Point{}).IsZero())
	assert.Equal(t, "3,-1", terrain.Point{X: 3, Y: -1}.String())
}
