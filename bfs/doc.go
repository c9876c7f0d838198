// Package bfs provides breadth-first search over a grid.Grid, returning the
// route with the fewest cells from Start to Target and an ordered trace of
// the cells it processed.
//
// What
//
//   - Explore cells in non-decreasing distance (moves) from Start.
//   - A FIFO queue holds the frontier; a set of positions records what has been
//     seen, so each cell is enqueued at most once.
//   - Neighbors come from grid.Grid.Neighbors in the fixed order Up, Down,
//     Left, Right, which fixes tie-breaking between equally short routes.
//   - Each discovered cell gets its parent recorded and is marked Visited; the
//     Target keeps its kind until the route is painted.
//   - One search.Event is emitted per dequeued cell.
//
// Why
//
//	All moves have implicit weight 1, so the first time Target is dequeued its
//	parent chain is a shortest route by cell count.
//
// Determinism
//
//	Given the same grid, the sequence of events is fully reproducible.
//
// Complexity (N = grid dimension)
//
//   - Time:   O(N²)   (each cell enqueued at most once, four neighbors each)
//   - Memory: O(N²)   (queue and visited set)
//
// Usage
//
//	outcome, err := bfs.Search(g, search.WithOnStep(func(ev search.Event) {
//		// render ev
//	}))
//
//	// or drive it yourself:
//	run, err := bfs.New(g)
//	for ev, ok := run.Step(); ok; ev, ok = run.Step() {
//		_ = ev
//	}
//	outcome, err := run.Outcome()
//
// Errors
//
//   - grid.ErrMissingEndpoints  if Start or Target is unset.
//   - search.ErrNoParentChain   if reconstruction fails (a logic bug).
package bfs
