package simulation

import "github.com/katalvlaran/pathbench/terrain"

// Board is the shared view of the terrain and agent positions during the
// advancing phase. Only the coordinating goroutine mutates it.
type Board struct {
	grid      *terrain.Grid
	positions []terrain.Point
	goals     []terrain.Point
	tick      int
}

func newBoard(g *terrain.Grid, starts, goals []terrain.Point) *Board {
	return &Board{
		grid:      g,
		positions: append([]terrain.Point(nil), starts...),
		goals:     goals,
	}
}

// Grid returns the terrain snapshot of the current iteration.
func (b *Board) Grid() *terrain.Grid { return b.grid }

// Tick returns the number of completed ticks in the current iteration.
func (b *Board) Tick() int { return b.tick }

// Positions returns a copy of every agent's position, by agent index.
func (b *Board) Positions() []terrain.Point {
	return append([]terrain.Point(nil), b.positions...)
}

// Occupants returns the indices of agents standing on p.
func (b *Board) Occupants(p terrain.Point) []int {
	var out []int
	for i, q := range b.positions {
		if q == p {
			out = append(out, i)
		}
	}
	return out
}

// Finished returns the number of agents standing on their goal.
func (b *Board) Finished() int {
	n := 0
	for i, p := range b.positions {
		if p == b.goals[i] {
			n++
		}
	}
	return n
}

func (b *Board) move(agent int, to terrain.Point) { b.positions[agent] = to }
