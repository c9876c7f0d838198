package astar

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name identifies this strategy in outcomes and metrics.
const Name = "astar"

// Run holds the mutable state of one A* execution over a grid.
// It implements search.Stepper.
type Run struct {
	grid    *grid.Grid                  // The searched grid; costs and parents are written in place.
	target  grid.Position               // Destination, by identity.
	open    openPQ                      // Min-heap of open cells by (F, seq).
	index   map[grid.Position]*openItem // Open membership and decrease-key handle.
	closed  mapset.Set[grid.Position]   // Cells already expanded.
	seq     int                         // Next insertion sequence number.
	steps   int                         // Iterations performed.
	done    bool
	outcome search.Outcome
	err     error
}

// New prepares an A* run on g: previous run state is cleared, every cell is
// seeded with cost.Seed and the open set holds only Start.
// Returns grid.ErrMissingEndpoints if Start or Target is unset.
func New(g *grid.Grid) (*Run, error) {
	start, target, err := g.Endpoints()
	if err != nil {
		return nil, err
	}
	g.ClearSearch()
	if err = cost.Seed(g); err != nil {
		return nil, err
	}

	n := g.Dimension() * g.Dimension()
	r := &Run{
		grid:    g,
		target:  target,
		open:    make(openPQ, 0, n),
		index:   make(map[grid.Position]*openItem, n),
		closed:  mapset.New[grid.Position](),
		outcome: search.Outcome{Strategy: Name},
	}
	heap.Init(&r.open)
	r.push(start)

	return r, nil
}

// Search runs A* on g to completion, calling the OnStep hook once per
// iteration. Returns grid.ErrMissingEndpoints for an incomplete grid or
// search.ErrNoParentChain if reconstruction fails.
func Search(g *grid.Grid, opts ...search.Option) (search.Outcome, error) {
	r, err := New(g)
	if err != nil {
		return search.Outcome{}, err
	}
	return search.Drive(r, opts...)
}

// push adds p to the open set with its current F and the next sequence number.
func (r *Run) push(p grid.Position) {
	item := &openItem{pos: p, f: r.grid.At(p).F(), seq: r.seq}
	r.seq++
	r.index[p] = item
	heap.Push(&r.open, item)
}

// Step expands the open cell with minimum F. The target stops the run and
// reconstructs the route; any other cell is closed, marked Visited, and its
// neighbors relaxed.
func (r *Run) Step() (search.Event, bool) {
	if r.done {
		return search.Event{}, false
	}
	if r.open.Len() == 0 {
		r.done = true
		return search.Event{}, false
	}

	r.steps++
	r.outcome.Operations = r.steps
	item := heap.Pop(&r.open).(*openItem)
	cur := item.pos
	delete(r.index, cur)

	if cur == r.target {
		return r.finish(cur)
	}

	r.closed.Put(cur)
	r.grid.Visit(cur)
	discovered := r.relax(cur)

	return search.Event{
		Step:       r.steps,
		Kind:       search.Expanded,
		Cell:       cur,
		Discovered: discovered,
		Frontier:   r.open.Len(),
	}, true
}

// relax examines each neighbor of cur that is not closed. A neighbor new to
// the open set is always relaxed; one already open is relaxed only when the
// tentative G is strictly lower than its current G. Returns the neighbors
// whose parent was assigned, in policy order.
func (r *Run) relax(cur grid.Position) []grid.Position {
	curG := r.grid.At(cur).G

	var discovered []grid.Position
	for _, nb := range r.grid.Neighbors(cur) {
		if r.closed.Has(nb) {
			continue
		}
		tentative := curG + cost.Step(cur, nb)

		item, isOpen := r.index[nb]
		if isOpen && tentative >= r.grid.At(nb).G {
			continue // no improvement
		}

		r.grid.SetParent(nb, cur)
		r.grid.SetCost(nb, tentative, cost.Heuristic(nb, r.target))
		if isOpen {
			item.f = r.grid.At(nb).F()
			heap.Fix(&r.open, item.index)
		} else {
			r.push(nb)
		}
		discovered = append(discovered, nb)
	}

	return discovered
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
		Frontier: r.open.Len(),
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
