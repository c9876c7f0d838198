// Package bfs provides breadth-first search over a grid.Grid, returning the
// fewest-cells route from Start to Target and one trace event per dequeued cell.
package bfs

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name identifies this strategy in outcomes and metrics.
const Name = "bfs"

// Run encapsulates mutable BFS state for one search over a grid.
// It implements search.Stepper.
type Run struct {
	grid    *grid.Grid
	start   grid.Position
	target  grid.Position
	queue   []grid.Position
	visited mapset.Set[grid.Position]
	steps   int
	done    bool
	outcome search.Outcome
	err     error
}

// New prepares a BFS run on g: previous run state is cleared, the queue is
// seeded with Start and the visited set with Start.
// Returns grid.ErrMissingEndpoints if Start or Target is unset.
func New(g *grid.Grid) (*Run, error) {
	start, target, err := g.Endpoints()
	if err != nil {
		return nil, err
	}
	g.ClearSearch()

	n := g.Dimension() * g.Dimension()
	r := &Run{
		grid:    g,
		start:   start,
		target:  target,
		queue:   make([]grid.Position, 0, n),
		visited: mapset.New[grid.Position](),
		outcome: search.Outcome{Strategy: Name},
	}
	r.enqueue(start)

	return r, nil
}

// Search runs BFS on g to completion, calling the OnStep hook once per
// dequeued cell. Returns grid.ErrMissingEndpoints for an incomplete grid or
// search.ErrNoParentChain if reconstruction fails.
func Search(g *grid.Grid, opts ...search.Option) (search.Outcome, error) {
	r, err := New(g)
	if err != nil {
		return search.Outcome{}, err
	}
	return search.Drive(r, opts...)
}

// enqueue marks p visited and appends it to the queue.
func (r *Run) enqueue(p grid.Position) {
	r.visited.Put(p)
	r.queue = append(r.queue, p)
}

// Step pops the queue front. The target stops the run and reconstructs the
// route; any other cell enqueues its unvisited neighbors in policy order,
// recording their parent and marking them Visited (the target keeps its kind).
func (r *Run) Step() (search.Event, bool) {
	if r.done {
		return search.Event{}, false
	}
	if len(r.queue) == 0 {
		r.done = true
		return search.Event{}, false
	}

	r.steps++
	r.outcome.Operations = r.steps
	cur := r.dequeue()

	if cur == r.target {
		return r.finish(cur)
	}

	var discovered []grid.Position
	for _, nb := range r.grid.Neighbors(cur) {
		// first time seen?
		if r.visited.Has(nb) {
			continue
		}
		r.grid.SetParent(nb, cur)
		r.grid.Visit(nb)
		r.enqueue(nb)
		discovered = append(discovered, nb)
	}

	return search.Event{
		Step:       r.steps,
		Kind:       search.Expanded,
		Cell:       cur,
		Discovered: discovered,
		Frontier:   len(r.queue),
	}, true
}

// dequeue pops the first queued position.
func (r *Run) dequeue() grid.Position {
	p := r.queue[0]
	r.queue = r.queue[1:]
	return p
}

// finish reconstructs the route to the target and closes the run.
func (r *Run) finish(cur grid.Position) (search.Event, bool) {
	r.done = true
	path, err := search.Reconstruct(r.grid, cur)
	if err != nil {
		r.err = err
		return search.Event{}, false
	}
	r.outcome.Found = true
	r.outcome.Path = path
	r.outcome.Cost = cost.PathCost(path)

	return search.Event{
		Step:     r.steps,
		Kind:     search.Found,
		Cell:     cur,
		Frontier: len(r.queue),
		Path:     path,
	}, true
}

// Outcome reports the result once Step has returned false.
func (r *Run) Outcome() (search.Outcome, error) {
	if r.err != nil {
		return search.Outcome{}, r.err
	}
	if !r.done {
		return search.Outcome{Strategy: Name}, nil
	}
	return r.outcome, nil
}
