// Package search provides the pieces shared by gridpath strategies.
//
// What
//
//   - Event: one trace notification per search iteration (Expanded or Found),
//     carrying the processed cell, the neighbors it (re)parented, the frontier
//     size, and on Found the reconstructed route.
//   - Stepper: the iteration contract implemented by bfs.Run and astar.Run.
//   - Events: adapts a Stepper into a lazy iter.Seq[Event].
//   - Drive: runs a Stepper to completion with an OnStep hook.
//   - Reconstruct: walks parent links from target to start and marks the route.
//
// Why
//
//	A search only mutates the grid and emits an Event; the rendering shell
//	consumes events at its own pace, with no timing inside the algorithm.
//
// Cancellation
//
//	There is no explicit cancel operation. A caller that stops calling Step (or
//	breaks out of a range over Events) has implicitly abandoned the run.
//
// Errors
//
//   - ErrNoParentChain: parent links do not lead back to start. This is an
//     invariant violation; strategies abort the run instead of returning a
//     partial path.
//
// Usage
//
//	run, err := bfs.New(g)
//	if err != nil {
//		// grid.ErrMissingEndpoints
//	}
//	for ev := range search.Events(run) {
//		render(ev)
//	}
//	outcome, err := run.Outcome()
package search
