// Package gridpath is a grid path-finding engine: an N×N board of cells,
// caller edits (Start, Target, Obstacle), and two interchangeable search
// strategies that paint their progress onto the board one iteration at a time.
//
// What is inside?
//
//	grid/     the board: cells, kinds, endpoints, neighbor policy, ASCII layouts
//	cost/     Euclidean step cost, Manhattan heuristic, A* cost seeding
//	search/   trace events, outcomes, the Stepper contract, path reconstruction
//	bfs/      breadth-first search (fewest cells)
//	astar/    A* search (least accumulated cost, heuristic guided)
//	engine/   the caller surface: edits, runs, logging, tracing, run metrics
//	metrics/  Prometheus collectors for runs
//	service/  in-memory grid sessions keyed by uuid
//	api/      gin HTTP routes over sessions
//	config/   .env and environment configuration for cmd/gridpathd
//
// Searches never sleep or draw. Each iteration yields a search.Event; callers
// render at their own pace by ranging over search.Events or by passing
// search.WithOnStep to a run. NotFound is an outcome, not an error.
//
// Quick ASCII example (5×5, wall at column 2 with a bottom gap):
//
//	S.#.T        *o#**
//	..#..        *o#*o
//	..#..   →    *o#*o
//	..#..        *o#*o
//	.....        ****o
//
// The right side is the board after a BFS run: * marks the 13-cell route,
// o every other cell the search reached.
package gridpath
