package grid

// Reachable returns every non-Obstacle cell connected to from under the
// neighbor policy, including from itself, in row-major order.
// Returns nil if from is out of bounds or is an Obstacle.
//
// Time:   O(N²).
// Memory: O(N²) for the seen flags and queue.
func (g *Grid) Reachable(from Position) []Position {
	if !g.InBounds(from.Row, from.Col) || g.At(from).Kind == Obstacle {
		return nil
	}
	seen := make([]bool, len(g.cells))
	i0 := g.Index(from)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		for _, nb := range g.Neighbors(g.Coordinate(queue[qi])) {
			vi := g.Index(nb)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	out := make([]Position, 0, len(queue))
	for i, ok := range seen {
		if ok {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}
