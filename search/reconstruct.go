package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Reconstruct walks parent links from target back to the grid's Start,
// reverses them into start→target order, and marks every collected cell Path.
//
// The Start's own parent is never followed. A missing link, or a walk longer
// than N² cells (a cycle), yields ErrNoParentChain and leaves kinds untouched.
// Returns grid.ErrMissingEndpoints if the grid has no Start.
// Complexity: O(path length).
func Reconstruct(g *grid.Grid, target grid.Position) ([]grid.Position, error) {
	start, ok := g.Start()
	if !ok {
		return nil, grid.ErrMissingEndpoints
	}
	limit := g.Dimension() * g.Dimension()

	// build reversed path
	path := []grid.Position{target}
	for cur := target; cur != start; {
		prev, ok := g.Parent(cur)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no parent", ErrNoParentChain, cur)
		}
		path = append(path, prev)
		if len(path) > limit {
			return nil, fmt.Errorf("%w: cycle after %d cells", ErrNoParentChain, limit)
		}
		cur = prev
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	for _, p := range path {
		g.MarkPath(p)
	}
	return path, nil
}
