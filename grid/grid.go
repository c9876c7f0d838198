// Package grid provides the square cell grid searched by gridpath strategies.
// It supports:
//
//   - Bounds-checked read and mutate access by row and column
//   - Start/Target/Obstacle edits with invariant enforcement
//   - Per-run search bookkeeping: parent links, G/H costs, Visited and Path marks
//   - Orthogonal neighbor generation in a fixed, deterministic order
package grid

import (
	"fmt"
	"iter"
)

// New allocates an n×n grid of Empty cells with no endpoints.
// Returns ErrInvalidDimension if n <= 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, n)
	}
	g := &Grid{
		n:      n,
		cells:  make([]Cell, n*n),
		parent: make([]int, n*n),
	}
	for i := range g.cells {
		g.cells[i].Position = g.Coordinate(i)
	}
	g.Reset()

	return g, nil
}

// Dimension returns N.
func (g *Grid) Dimension() int { return g.n }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// Index maps (row,col) to a row-major index: row*N + col.
// The caller must ensure the position is in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.n + p.Col
}

// Coordinate converts a row-major index back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.n, Col: idx % g.n}
}

func (g *Grid) checked(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, row, col, g.n, g.n)
	}
	return row*g.n + col, nil
}

// Get returns a snapshot of the cell at (row,col).
// Returns ErrOutOfBounds for positions outside the grid.
func (g *Grid) Get(row, col int) (Cell, error) {
	i, err := g.checked(row, col)
	if err != nil {
		return Cell{}, err
	}
	return g.cells[i], nil
}

// At returns the cell at p, ignoring bounds errors (zero Cell when outside).
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p.Row, p.Col) {
		return Cell{}
	}
	return g.cells[g.Index(p)]
}

// SetKind applies a caller edit to the cell at (row,col).
//
// Rules:
//   - A second Start or second Target is rejected.
//   - Obstacle on an endpoint, Start on the Target, and Target on the Start are rejected.
//   - Visited and Path are reserved for running searches and rejected.
//   - Empty on an endpoint clears that endpoint.
//   - Re-assigning the current kind is a no-op.
//
// Returns ErrOutOfBounds or ErrInvalidAssignment (both wrapped with context).
func (g *Grid) SetKind(row, col int, kind Kind) error {
	i, err := g.checked(row, col)
	if err != nil {
		return err
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidAssignment, kind)
	}
	p := g.cells[i].Position

	switch kind {
	case Visited, Path:
		return fmt.Errorf("%w: %s is reserved for searches", ErrInvalidAssignment, kind)
	case Start:
		if g.start == i {
			return nil
		}
		if g.start >= 0 {
			return fmt.Errorf("%w: start already set at %s", ErrInvalidAssignment, g.Coordinate(g.start))
		}
		if g.target == i {
			return fmt.Errorf("%w: %s is the target", ErrInvalidAssignment, p)
		}
		g.start = i
	case Target:
		if g.target == i {
			return nil
		}
		if g.target >= 0 {
			return fmt.Errorf("%w: target already set at %s", ErrInvalidAssignment, g.Coordinate(g.target))
		}
		if g.start == i {
			return fmt.Errorf("%w: %s is the start", ErrInvalidAssignment, p)
		}
		g.target = i
	case Obstacle:
		if g.start == i || g.target == i {
			return fmt.Errorf("%w: cannot place obstacle on endpoint %s", ErrInvalidAssignment, p)
		}
	case Empty:
		if g.start == i {
			g.start = -1
		}
		if g.target == i {
			g.target = -1
		}
	}
	g.cells[i].Kind = kind

	return nil
}

// Reset clears every cell to Empty, zeroes costs and parents, and unsets both
// endpoints. N is unchanged and no cells are reallocated.
// Complexity: O(N²).
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Kind = Empty
		g.cells[i].G, g.cells[i].H = 0, 0
		g.parent[i] = -1
	}
	g.start, g.target = -1, -1
}

// ClearSearch discards the state left by a previous search run: Visited and
// Path cells return to Empty, endpoint kinds are restored, and parent links
// and costs are zeroed. Caller edits (obstacles, endpoints) are kept.
// Complexity: O(N²).
func (g *Grid) ClearSearch() {
	for i := range g.cells {
		switch g.cells[i].Kind {
		case Visited, Path:
			g.cells[i].Kind = Empty
		}
		g.cells[i].G, g.cells[i].H = 0, 0
		g.parent[i] = -1
	}
	if g.start >= 0 {
		g.cells[g.start].Kind = Start
	}
	if g.target >= 0 {
		g.cells[g.target].Kind = Target
	}
}

// Each yields every cell snapshot in row-major order.
func (g *Grid) Each() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := range g.cells {
			if !yield(g.cells[i]) {
				return
			}
		}
	}
}

// Start returns the Start position, if set.
func (g *Grid) Start() (Position, bool) {
	if g.start < 0 {
		return Position{}, false
	}
	return g.Coordinate(g.start), true
}

// Target returns the Target position, if set.
func (g *Grid) Target() (Position, bool) {
	if g.target < 0 {
		return Position{}, false
	}
	return g.Coordinate(g.target), true
}

// Endpoints returns both endpoints or ErrMissingEndpoints if either is unset.
func (g *Grid) Endpoints() (start, target Position, err error) {
	s, okS := g.Start()
	t, okT := g.Target()
	if !okS || !okT {
		return Position{}, Position{}, ErrMissingEndpoints
	}
	return s, t, nil
}

// IsEndpoint reports whether p is the Start or the Target, by identity.
func (g *Grid) IsEndpoint(p Position) bool {
	if !g.InBounds(p.Row, p.Col) {
		return false
	}
	i := g.Index(p)
	return i == g.start || i == g.target
}

// Visit marks p as Visited unless it is an endpoint, whose kind is kept.
func (g *Grid) Visit(p Position) {
	if g.IsEndpoint(p) {
		return
	}
	g.cells[g.Index(p)].Kind = Visited
}

// MarkPath marks p as part of the reconstructed route. Endpoints are marked
// too; they stay identifiable through Start and Target.
func (g *Grid) MarkPath(p Position) {
	g.cells[g.Index(p)].Kind = Path
}

// SetParent records from as the predecessor of p for the current run.
func (g *Grid) SetParent(p, from Position) {
	g.parent[g.Index(p)] = g.Index(from)
}

// Parent returns the predecessor of p recorded by the current run.
func (g *Grid) Parent(p Position) (Position, bool) {
	if !g.InBounds(p.Row, p.Col) {
		return Position{}, false
	}
	idx := g.parent[g.Index(p)]
	if idx < 0 {
		return Position{}, false
	}
	return g.Coordinate(idx), true
}

// SetCost assigns the accumulated cost and heuristic of p.
func (g *Grid) SetCost(p Position, gCost, hCost float64) {
	c := &g.cells[g.Index(p)]
	c.G, c.H = gCost, hCost
}
