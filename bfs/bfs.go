// Package bfs provides breadth-first search over a terrain.Grid,
// returning a fewest-moves path under pruned 8-connectivity.
package bfs

import (
	"github.com/katalvlaran/pathbench/terrain"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	p     terrain.Point
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *terrain.Grid
	opts    Options
	goal    terrain.Point
	queue   []queueItem
	visited map[terrain.Point]bool
	parent  map[terrain.Point]terrain.Point
	res     *Result
}

// Search runs breadth-first search on g from start toward goal,
// applying any number of functional Options.
// Returns ErrGridNil for a nil grid and ErrOptionViolation for bad options.
// A start or goal that is absent or blocked is not an error: the Result
// simply reports Found == false with zero expansions.
func Search(g *terrain.Grid, start, goal terrain.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{}
	if !g.IsTraversable(start) || !g.IsTraversable(goal) {
		return res, nil
	}

	n := g.Len()
	w := &walker{
		grid:    g,
		opts:    o,
		goal:    goal,
		queue:   make([]queueItem, 0, n),
		visited: make(map[terrain.Point]bool, n),
		parent:  make(map[terrain.Point]terrain.Point, n),
		res:     res,
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0)
	w.loop()

	return w.res, nil
}

// Reachable reports whether goal can be reached from start within
// maxExpansions dequeues (0 means unlimited).
func Reachable(g *terrain.Grid, start, goal terrain.Point, maxExpansions int) bool {
	res, err := Search(g, start, goal, WithMaxExpansions(maxExpansions))
	return err == nil && res.Found
}

// enqueue marks p visited at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(p terrain.Point, d int) {
	w.visited[p] = true
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{p: p, depth: d})
}

// loop processes the queue until the goal is dequeued, the queue drains,
// or the expansion cap is hit.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		if w.opts.MaxExpansions > 0 && w.res.Expansions >= w.opts.MaxExpansions {
			w.res.Capped = true
			return
		}

		item := w.dequeue()
		if item.p == w.goal {
			w.res.Found = true
			w.res.Path = w.pathTo(item.p)
			return
		}
		w.enqueueNeighbors(item)
	}
}

// dequeue pops the first item, counts it, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Expansions++
	w.opts.OnDequeue(item.p, item.depth)
	return item
}

// enqueueNeighbors enqueues each unseen pruned neighbor of item.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, nbr := range w.grid.Neighbors(item.p) {
		// first time seen?
		if !w.visited[nbr] {
			w.parent[nbr] = item.p
			w.enqueue(nbr, item.depth+1)
		}
	}
}

// pathTo walks parent links back from dest and returns start→dest.
func (w *walker) pathTo(dest terrain.Point) []terrain.Point {
	path := []terrain.Point{dest}
	for cur := dest; ; {
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
