package astar

import (
	"container/heap"

	"github.com/katalvlaran/pathbench/terrain"
)

// Search computes a minimum-cost path from start to goal on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must be traversable; otherwise an empty Result is
//     returned without error.
func Search(g *terrain.Grid, start, goal terrain.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	res := &Result{}
	if !g.IsTraversable(start) || !g.IsTraversable(goal) {
		return res, nil
	}

	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		score:   make(map[terrain.Point]int, n),
		prev:    make(map[terrain.Point]terrain.Point, n),
		closed:  make(map[terrain.Point]bool, n),
		pq:      make(nodePQ, 0, n),
		res:     res,
	}
	r.init(start)
	r.process()

	return res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *terrain.Grid
	options Options
	goal    terrain.Point
	score   map[terrain.Point]int           // best known g per cell
	prev    map[terrain.Point]terrain.Point // predecessor on the best path
	closed  map[terrain.Point]bool          // finalised cells
	pq      nodePQ
	seq     int
	res     *Result
}

// init seeds the heap with the start cell at g = 0.
func (r *runner) init(start terrain.Point) {
	r.score[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

func (r *runner) push(p terrain.Point, g int) {
	heap.Push(&r.pq, &nodeItem{p: p, g: g, f: g + manhattan(p, r.goal), seq: r.seq})
	r.seq++
}

// process pops cells in f order until the goal is popped, the heap drains,
// or the expansion cap is reached.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		if r.options.MaxExpansions > 0 && r.res.Expansions >= r.options.MaxExpansions {
			return
		}

		// 1) Pop the smallest-f item and count the effort.
		item := heap.Pop(&r.pq).(*nodeItem)
		r.res.Expansions++

		// 2) Skip stale entries.
		if r.closed[item.p] {
			continue
		}
		r.closed[item.p] = true
		r.options.OnExpand(item.p, item.g)

		// 3) Goal popped: its score is final.
		if item.p == r.goal {
			r.res.Found = true
			r.res.Cost = item.g
			r.res.Path = r.pathTo(item.p)
			return
		}

		// 4) Relax pruned neighbors.
		r.relax(item.p, item.g)
	}
}

// relax improves scores of u's neighbors reached through u.
func (r *runner) relax(u terrain.Point, gu int) {
	for _, v := range r.g.Neighbors(u) {
		if r.closed[v] {
			continue
		}
		tentative := gu + r.g.StepCost(u, v)
		if old, seen := r.score[v]; seen && tentative >= old {
			continue
		}
		r.score[v] = tentative
		r.prev[v] = u
		r.push(v, tentative)
	}
}

func (r *runner) pathTo(dest terrain.Point) []terrain.Point {
	path := []terrain.Point{dest}
	for cur := dest; ; {
		p, ok := r.prev[cur]
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

func manhattan(a, b terrain.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// nodeItem is a heap entry: a cell, its g score at push time, f = g + h,
// and a sequence number for stable tie-breaking.
type nodeItem struct {
	p   terrain.Point
	g   int
	f   int
	seq int
}

// nodePQ is a min-heap of *nodeItem ordered by f, then by push order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
