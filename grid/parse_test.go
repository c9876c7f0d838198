package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// TestParse_Errors verifies that Parse rejects malformed layouts.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", nil, grid.ErrEmptyGrid},
		{"EmptyRow", []string{""}, grid.ErrEmptyGrid},
		{"Ragged", []string{"..", "."}, grid.ErrNonSquare},
		{"Rectangular", []string{"...", "..."}, grid.ErrNonSquare},
		{"Glyph", []string{".x", ".."}, grid.ErrUnknownGlyph},
		{"TwoStarts", []string{"S.", ".S"}, grid.ErrInvalidAssignment},
		{"TwoTargets", []string{"T.", ".T"}, grid.ErrInvalidAssignment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.Parse(tc.rows...); !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestParse_RoundTrip ensures String reproduces the layout.
func TestParse_RoundTrip(t *testing.T) {
	rows := []string{
		"S.#.T",
		"..#..",
		"..#..",
		"..#..",
		".....",
	}
	g, err := grid.Parse(rows...)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	got := g.Rows()
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %q; want %q", i, got[i], rows[i])
		}
	}
	s, _ := g.Start()
	tg, _ := g.Target()
	if s != (grid.Position{Row: 0, Col: 0}) || tg != (grid.Position{Row: 0, Col: 4}) {
		t.Errorf("endpoints = %v,%v; want (0,0),(0,4)", s, tg)
	}
}
