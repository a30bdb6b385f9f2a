package jpsw

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/pathbench/terrain"
)

// Searcher is a JPSW search session.
type Searcher struct {
	opts  Options
	grid  *terrain.Grid
	goal  terrain.Point
	bound bool
	succ  map[succKey][]terrain.Direction
	jumps map[jumpKey]jumpResult
	stats Stats
}

// New returns a Searcher configured by opts.
func New(opts ...Option) (*Searcher, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Searcher{
		opts:  o,
		succ:  make(map[succKey][]terrain.Direction),
		jumps: make(map[jumpKey]jumpResult),
	}, nil
}

// Stats returns cumulative cache statistics.
func (s *Searcher) Stats() Stats { return s.stats }

// bind attaches the session to g and goal, dropping stale cache entries.
func (s *Searcher) bind(g *terrain.Grid, goal terrain.Point) {
	switch {
	case !s.bound || s.grid != g:
		s.succ = make(map[succKey][]terrain.Direction)
		s.jumps = make(map[jumpKey]jumpResult)
	case s.goal != goal:
		s.jumps = make(map[jumpKey]jumpResult)
	}
	s.grid, s.goal, s.bound = g, goal, true
}

// Search finds a minimum-cost route from start to goal and returns its jump
// points. Absent or blocked endpoints yield an empty Result without error.
func (s *Searcher) Search(g *terrain.Grid, start, goal terrain.Point) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	res := &Result{}
	if !g.IsTraversable(start) || !g.IsTraversable(goal) {
		return res, nil
	}
	s.bind(g, goal)

	score := map[terrain.Point]float64{start: 0}
	prev := make(map[terrain.Point]terrain.Point)
	closed := make(map[terrain.Point]bool)
	pq := make(jumpPQ, 0, 64)
	seq := 0
	push := func(p terrain.Point, gs float64, arrival terrain.Direction) {
		heap.Push(&pq, &jumpItem{p: p, g: gs, f: gs + octile(p, goal), arrival: arrival, seq: seq})
		seq++
	}
	push(start, 0, terrain.Direction{})

	for pq.Len() > 0 {
		if s.opts.MaxExpansions > 0 && res.Expansions >= s.opts.MaxExpansions {
			return res, nil
		}
		item := heap.Pop(&pq).(*jumpItem)
		res.Expansions++
		if closed[item.p] {
			continue
		}
		closed[item.p] = true

		if item.p == goal {
			res.Found = true
			res.Cost = item.g
			res.Path = coarsePath(prev, goal)
			return res, nil
		}

		for _, d := range s.successorsAt(item.p, item.arrival) {
			var (
				y  terrain.Point
				ok bool
			)
			if d.IsDiagonal() {
				y, ok = s.jumpDiagonal(item.p, d)
			} else {
				y, ok = s.jumpOrthogonal(item.p, d)
			}
			if !ok || closed[y] {
				continue
			}
			gy := item.g + s.legCost(item.p, y)
			if old, seen := score[y]; seen && gy >= old-eps {
				continue
			}
			score[y] = gy
			prev[y] = item.p
			push(y, gy, d)
		}
	}

	return res, nil
}

func coarsePath(prev map[terrain.Point]terrain.Point, goal terrain.Point) []terrain.Point {
	path := []terrain.Point{goal}
	for cur := goal; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Reconstruct expands a jump-point path into adjacent cells. Each leg is
// walked by unit steps without its last cell; the final goal is appended
// once at the end. Legs that are neither straight nor diagonal are walked
// diagonally first, then straight.
func Reconstruct(coarse []terrain.Point) []terrain.Point {
	if len(coarse) == 0 {
		return nil
	}
	full := make([]terrain.Point, 0, len(coarse)*2)
	for i := 0; i+1 < len(coarse); i++ {
		a, b := coarse[i], coarse[i+1]
		for cur := a; cur != b; cur = cur.Add(terrain.DirectionBetween(cur, b)) {
			full = append(full, cur)
		}
	}

	return append(full, coarse[len(coarse)-1])
}

// octile is the cost of the unobstructed route on a weight-1 grid.
func octile(a, b terrain.Point) float64 {
	dx, dy := math.Abs(float64(a.X-b.X)), math.Abs(float64(a.Y-b.Y))
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

type jumpItem struct {
	p       terrain.Point
	g, f    float64
	arrival terrain.Direction
	seq     int
}

// jumpPQ is a min-heap of *jumpItem ordered by f, then by push order.
type jumpPQ []*jumpItem

func (pq jumpPQ) Len() int { return len(pq) }

func (pq jumpPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq jumpPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *jumpPQ) Push(x interface{}) { *pq = append(*pq, x.(*jumpItem)) }

func (pq *jumpPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
