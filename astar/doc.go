// Package astar implements cost-guided A* search over a grid.Grid.
//
// A* expands, at every iteration, the open cell with the smallest priority
// F = G + H, where G is the accumulated Euclidean cost from Start and H the
// Manhattan estimate to Target. Ties go to the cell that entered the open set
// first.
//
// Complexity:
//
//   - Time:  O(N² log N²) for an N×N grid
//   - Each cell is expanded at most once (closed set).
//   - Each relaxation is a heap.Push or heap.Fix: O(log |open|).
//   - Space: O(N²) for the open index, the closed set and the heap.
//
// Notes on implementation choices:
//
//   - Before the first iteration cost.Seed initializes every cell: G to the
//     straight-line distance from Start, H to the Manhattan distance to Target.
//     A neighbor entering the open set is always relaxed on insertion, so the
//     seeded G only survives on cells the run never reached.
//   - The open set is a heap keyed by (F, insertion sequence) plus a
//     position→item index; an improved G is applied in place with heap.Fix
//     and keeps the original sequence, so ordering matches a linear
//     first-minimum scan over insertion order.
//   - Closed membership uses mapset from github.com/zyedidia/generic.
//   - Start and Target keep their kinds when expanded; every other expanded
//     cell becomes grid.Visited.
//
// Errors:
//
//   - grid.ErrMissingEndpoints if Start or Target is unset.
//   - search.ErrNoParentChain if the route cannot be reconstructed.
package astar
