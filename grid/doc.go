// Package grid models the fixed-size square board that gridpath searches run on.
//
// What:
//
//   - Grid holds N×N cells in row-major order; each cell has a Kind
//     (Empty, Start, Target, Obstacle, Visited, Path) and G/H cost fields.
//   - Start and Target are tracked by identity, so a search that paints the
//     route with Path never loses them.
//   - Parent links are index-based back-references, overwritten wholesale on
//     every run.
//   - Neighbors yields orthogonal, in-bounds, non-obstacle cells in the fixed
//     order Up, Down, Left, Right.
//   - Reachable flood-fills the open region around a cell.
//   - Parse and String convert to and from an ASCII layout.
//
// Why:
//
//   - Search strategies (bfs, astar) need one mutable board with cheap
//     per-cell bookkeeping and a deterministic neighbor order.
//   - Rendering shells need snapshots (Get, Each, Rows) without owning cells.
//
// Complexity:
//
//   - Get, SetKind, Neighbors, Parent: O(1).
//   - Reset, ClearSearch, Each, Reachable, Parse: O(N²).
//
// Errors:
//
//   - ErrOutOfBounds: row or column outside [0, N).
//   - ErrInvalidAssignment: second Start/Target, obstacle on an endpoint,
//     endpoint collision, or a reserved kind (Visited, Path).
//   - ErrMissingEndpoints: Endpoints called without both Start and Target.
//   - ErrInvalidDimension: New with N <= 0.
//   - ErrEmptyGrid, ErrNonSquare, ErrUnknownGlyph: malformed Parse layouts.
//
// Layout example (5×5, wall at column 2 with a gap at the bottom):
//
//	S.#.T
//	..#..
//	..#..
//	..#..
//	.....
package grid
