package grid

import (
	"fmt"
	"strings"
)

// Parse builds a grid from an ASCII layout, one string per row.
//
// Glyphs: '.' Empty, 'S' Start, 'T' Target, '#' Obstacle, 'o' Visited, '*' Path.
// Visited and Path glyphs are accepted so rendered snapshots round-trip; the
// endpoints are still subject to the SetKind rules.
//
// Returns ErrEmptyGrid for no rows or an empty first row, ErrNonSquare if any
// row length differs from the row count, ErrUnknownGlyph for other
// characters, or ErrInvalidAssignment for duplicate endpoints.
// Complexity: O(N²).
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c := 0; c < n; c++ {
			kind, ok := kindFromGlyph(row[c])
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, row[c], r, c)
			}
			switch kind {
			case Visited, Path:
				g.cells[r*n+c].Kind = kind
			default:
				if err = g.SetKind(r, c, kind); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Rows renders the grid as one glyph string per row.
func (g *Grid) Rows() []string {
	out := make([]string, g.n)
	buf := make([]byte, g.n)
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			buf[c] = g.cells[r*g.n+c].Kind.Glyph()
		}
		out[r] = string(buf)
	}
	return out
}

// String renders the grid layout, one row per line.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
