package agent_test

import (
	"testing"

	"github.com/katalvlaran/pathbench/agent"
	"github.com/katalvlaran/pathbench/benchmark"
	"github.com/katalvlaran/pathbench/search"
	"github.com/katalvlaran/pathbench/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedProbe returns a scripted sequence of counter readings.
type fixedProbe struct{ reads []uint64 }

func (p *fixedProbe) Allocated() uint64 {
	v := p.reads[0]
	p.reads = p.reads[1:]
	return v
}

func corridor(t *testing.T) *terrain.Grid {
	t.Helper()
	g, err := terrain.FromRows([][]int{
		{1, 0, 1, 1},
		{1, 0, 1, 1},
		{1, 0, 1, 1},
	})
	require.NoError(t, err)
	return g
}

// TestNewAgents rejects mismatched slices.
func TestNewAgents(t *testing.T) {
	_, err := agent.NewAgents([]terrain.Point{{}}, nil)
	assert.ErrorIs(t, err, agent.ErrCountMismatch)

	as, err := agent.NewAgents([]terrain.Point{{X: 1}, {X: 2}}, []terrain.Point{{Y: 1}, {Y: 2}})
	require.NoError(t, err)
	require.Len(t, as, 2)
	assert.Equal(t, terrain.Point{X: 2}, as[1].Position)
	assert.Equal(t, terrain.Point{Y: 2}, as[1].Goal)
}

// TestIsPathPossible covers the sealed corridor and the trivial case.
func TestIsPathPossible(t *testing.T) {
	g := corridor(t)
	assert.False(t, agent.New(terrain.Point{}, terrain.Point{X: 3, Y: 2}).IsPathPossible(g))
	assert.True(t, agent.New(terrain.Point{X: 2}, terrain.Point{X: 3, Y: 2}).IsPathPossible(g))
	assert.True(t, agent.New(terrain.Point{X: 1}, terrain.Point{X: 1}).IsPathPossible(g), "start == goal")

	open, err := terrain.Uniform(20, 1, 1)
	require.NoError(t, err)
	far := agent.New(terrain.Point{}, terrain.Point{X: 19})
	assert.True(t, far.IsPathPossibleWithin(open, 1))
	assert.True(t, far.IsPathPossibleWithin(open, 0), "non-positive factor uses the default")
	assert.False(t, far.IsPathPossible(nil))
}

// TestPlan_StepsToGoal plans with every algorithm and walks the stack.
func TestPlan_StepsToGoal(t *testing.T) {
	g, err := terrain.Uniform(5, 5, 1)
	require.NoError(t, err)
	for _, name := range search.Names {
		t.Run(name, func(t *testing.T) {
			a := agent.New(terrain.Point{}, terrain.Point{X: 4, Y: 4})
			s, ok := a.Plan(search.New(name, search.WithSeed(2)), g, benchmark.NopProbe{})
			require.True(t, ok)
			assert.Equal(t, 8, s.PathCost)
			assert.Positive(t, s.Steps)
			assert.Equal(t, benchmark.WCF(g), s.WCF)
			assert.Zero(t, s.Memory)

			prev := a.Position
			for a.Remaining() > 0 {
				next, _ := a.Next()
				p, ok := a.Step()
				require.True(t, ok)
				assert.Equal(t, next, p)
				assert.True(t, g.HasEdge(prev, p))
				prev = p
			}
			assert.True(t, a.GoalReached())
			_, ok = a.Step()
			assert.False(t, ok)
		})
	}
}

// TestPlan_MeasuresMemoryDelta uses a scripted probe.
func TestPlan_MeasuresMemoryDelta(t *testing.T) {
	g, err := terrain.Uniform(3, 3, 1)
	require.NoError(t, err)
	a := agent.New(terrain.Point{}, terrain.Point{X: 2, Y: 2})
	s, ok := a.Plan(search.New("BFS"), g, &fixedProbe{reads: []uint64{1000, 1640}})
	require.True(t, ok)
	assert.Equal(t, uint64(640), s.Memory)
}

// TestPlan_Unreachable leaves the stack empty.
func TestPlan_Unreachable(t *testing.T) {
	g := corridor(t)
	a := agent.New(terrain.Point{}, terrain.Point{X: 3, Y: 2})
	s, ok := a.Plan(search.New("A*"), g, nil)
	assert.False(t, ok)
	assert.Zero(t, a.Remaining())
	assert.Zero(t, s.PathCost)
	assert.False(t, a.GoalReached())
}

// TestSetPathAndReset checks stack orientation and reset.
func TestSetPathAndReset(t *testing.T) {
	a := agent.New(terrain.Point{}, terrain.Point{X: 2})
	a.SetPath([]terrain.Point{{X: 0}, {X: 1}, {X: 2}})
	assert.Equal(t, 2, a.Remaining())
	next, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, terrain.Point{X: 1}, next)

	a.Step()
	assert.Equal(t, terrain.Point{X: 1}, a.Position)
	a.Reset()
	assert.Equal(t, a.Start, a.Position)
	assert.Zero(t, a.Remaining())

	a.SetPath([]terrain.Point{{X: 0}})
	assert.Zero(t, a.Remaining(), "single-cell path leaves nothing to walk")
}
