// Package engine is the caller-facing surface of gridpath: it owns one grid,
// applies caller edits, and runs a chosen search strategy over it.
//
// An Engine wraps the core packages (grid, bfs, astar, search) with the
// ambient concerns a host process needs:
//
//   - structured log/slog records per run (search_start, search_complete,
//     search_failed);
//   - one OpenTelemetry span "engine.Run" per run, carrying strategy and
//     outcome attributes;
//   - a Recorder hook observed after every run (see package metrics).
//
// Runs are synchronous. The OnStep hook of each run is the per-iteration
// trace; callers that want to pace iterations themselves use Begin and range
// over search.Events. An Engine is not safe for concurrent use.
//
// Example:
//
//	eng, _ := engine.New(30, engine.WithLogger(logger))
//	_ = eng.SetCellKind(0, 0, grid.Start)
//	_ = eng.SetCellKind(29, 29, grid.Target)
//	out, err := eng.Run(ctx, engine.AStar, search.WithOnStep(render))
package engine
