// Package cost implements the distance model used by gridpath searches.
//
//   - Step: Euclidean distance of a single move, summed into G.
//   - Heuristic: Manhattan distance to the target, stored as H.
//   - F: the A* priority G + H.
//   - Seed: the pre-run pass that initializes G and H on every cell.
//   - PathCost: the accumulated Euclidean cost of a finished route.
package cost

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Step returns the Euclidean distance between two positions: the cost of
// moving from "from" to "to". Orthogonal neighbors cost exactly 1.
// Complexity: O(1).
func Step(from, to grid.Position) float64 {
	dr := float64(to.Row - from.Row)
	dc := float64(to.Col - from.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Heuristic returns the Manhattan distance from p to target.
// Complexity: O(1).
func Heuristic(p, target grid.Position) float64 {
	return float64(abs(p.Row-target.Row) + abs(p.Col-target.Col))
}

// F returns the priority of a cell: G + H.
func F(c grid.Cell) float64 { return c.G + c.H }

// Seed initializes every cell before an A* run: G becomes the straight-line
// distance from Start (so Start has G = 0) and H the Manhattan distance to
// Target. Unvisited cells therefore carry a finite G rather than +Inf.
//
// Returns grid.ErrMissingEndpoints if either endpoint is unset.
// Complexity: O(N²).
func Seed(g *grid.Grid) error {
	start, target, err := g.Endpoints()
	if err != nil {
		return err
	}
	for c := range g.Each() {
		g.SetCost(c.Position, Step(start, c.Position), Heuristic(c.Position, target))
	}
	return nil
}

// PathCost sums the per-step Euclidean distances along path.
// Empty and single-cell paths cost 0.
func PathCost(path []grid.Position) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += Step(path[i-1], path[i])
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
