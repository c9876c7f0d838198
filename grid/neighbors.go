package grid

// neighborOffsets lists orthogonal moves in policy order: Up, Down, Left, Right.
// The order drives BFS tie-breaking and A* first-seen ordering.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the in-bounds, non-Obstacle orthogonal neighbors of p in
// the fixed order Up, Down, Left, Right. Returns nil if p is out of bounds.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	if !g.InBounds(p.Row, p.Col) {
		return nil
	}
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, c := p.Row+d[0], p.Col+d[1]
		if !g.InBounds(r, c) || g.cells[r*g.n+c].Kind == Obstacle {
			continue
		}
		out = append(out, Position{Row: r, Col: c})
	}
	return out
}
