package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// New, Get and bounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	for _, n := range []int{0, -1, -30} {
		_, err := grid.New(n)
		if !errors.Is(err, grid.ErrInvalidDimension) {
			t.Errorf("New(%d) error = %v; want ErrInvalidDimension", n, err)
		}
	}
}

func TestNew_AllEmpty(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Dimension())

	count := 0
	for c := range g.Each() {
		assert.Equal(t, grid.Empty, c.Kind)
		assert.Zero(t, c.G)
		assert.Zero(t, c.H)
		count++
	}
	assert.Equal(t, 9, count)

	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.Target()
	assert.False(t, ok)
}

// TestGet_OutOfBounds checks every edge of a 3×3 grid.
func TestGet_OutOfBounds(t *testing.T) {
	g, _ := grid.New(3)
	invalid := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}}
	for _, rc := range invalid {
		if _, err := g.Get(rc[0], rc[1]); !errors.Is(err, grid.ErrOutOfBounds) {
			t.Errorf("Get(%d,%d) error = %v; want ErrOutOfBounds", rc[0], rc[1], err)
		}
		if err := g.SetKind(rc[0], rc[1], grid.Obstacle); !errors.Is(err, grid.ErrOutOfBounds) {
			t.Errorf("SetKind(%d,%d) error = %v; want ErrOutOfBounds", rc[0], rc[1], err)
		}
	}

	c, err := g.Get(2, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 2, Col: 1}, c.Position)
}

func TestEach_RowMajor(t *testing.T) {
	g, _ := grid.New(2)
	var got []grid.Position
	for c := range g.Each() {
		got = append(got, c.Position)
	}
	want := []grid.Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	assert.Equal(t, want, got)
}

//----------------------------------------------------------------------------//
// SetKind rules
//----------------------------------------------------------------------------//

func TestSetKind_Rules(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		row  int
		col  int
		kind grid.Kind
		err  error
	}{
		{"SecondStart", []string{"S..", "...", "..T"}, 1, 1, grid.Start, grid.ErrInvalidAssignment},
		{"SecondTarget", []string{"S..", "...", "..T"}, 1, 1, grid.Target, grid.ErrInvalidAssignment},
		{"ObstacleOnStart", []string{"S..", "...", "..T"}, 0, 0, grid.Obstacle, grid.ErrInvalidAssignment},
		{"ObstacleOnTarget", []string{"S..", "...", "..T"}, 2, 2, grid.Obstacle, grid.ErrInvalidAssignment},
		{"StartOnTarget", []string{"...", "...", "..T"}, 2, 2, grid.Start, grid.ErrInvalidAssignment},
		{"TargetOnStart", []string{"S..", "...", "..."}, 0, 0, grid.Target, grid.ErrInvalidAssignment},
		{"ReservedVisited", []string{"...", "...", "..."}, 1, 1, grid.Visited, grid.ErrInvalidAssignment},
		{"ReservedPath", []string{"...", "...", "..."}, 1, 1, grid.Path, grid.ErrInvalidAssignment},
		{"UnknownKind", []string{"...", "...", "..."}, 1, 1, grid.Kind(42), grid.ErrInvalidAssignment},
		{"ObstacleOnEmpty", []string{"S..", "...", "..T"}, 1, 1, grid.Obstacle, nil},
		{"FirstStart", []string{"...", "...", "..T"}, 0, 0, grid.Start, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(tc.rows...)
			require.NoError(t, err)
			err = g.SetKind(tc.row, tc.col, tc.kind)
			if tc.err == nil {
				assert.NoError(t, err)
				c, _ := g.Get(tc.row, tc.col)
				assert.Equal(t, tc.kind, c.Kind)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestSetKind_Idempotent ensures repeating an edit leaves identical state.
func TestSetKind_Idempotent(t *testing.T) {
	for _, kind := range []grid.Kind{grid.Start, grid.Target, grid.Obstacle, grid.Empty} {
		g, _ := grid.New(4)
		require.NoError(t, g.SetKind(1, 2, kind))
		before := g.String()
		beforeStart, _ := g.Start()
		require.NoError(t, g.SetKind(1, 2, kind), "second %s", kind)
		assert.Equal(t, before, g.String(), "kind %s", kind)
		afterStart, _ := g.Start()
		assert.Equal(t, beforeStart, afterStart)
	}
}

func TestSetKind_EmptyClearsEndpoint(t *testing.T) {
	g, err := grid.Parse("S..", "...", "..T")
	require.NoError(t, err)

	require.NoError(t, g.SetKind(0, 0, grid.Empty))
	_, ok := g.Start()
	assert.False(t, ok)
	// The start slot is free again.
	require.NoError(t, g.SetKind(1, 1, grid.Start))
	s, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, grid.Position{Row: 1, Col: 1}, s)

	require.NoError(t, g.SetKind(2, 2, grid.Empty))
	_, _, err = g.Endpoints()
	assert.ErrorIs(t, err, grid.ErrMissingEndpoints)
}

//----------------------------------------------------------------------------//
// Reset and ClearSearch
//----------------------------------------------------------------------------//

func TestReset(t *testing.T) {
	g, err := grid.Parse("S#.", ".#.", "..T")
	require.NoError(t, err)
	g.SetCost(grid.Position{Row: 1, Col: 0}, 3, 4)
	g.SetParent(grid.Position{Row: 1, Col: 0}, grid.Position{Row: 0, Col: 0})

	g.Reset()

	assert.Equal(t, 3, g.Dimension())
	for c := range g.Each() {
		assert.Equal(t, grid.Empty, c.Kind, "cell %s", c.Position)
		assert.Zero(t, c.F())
		_, ok := g.Parent(c.Position)
		assert.False(t, ok)
	}
	_, _, err = g.Endpoints()
	assert.ErrorIs(t, err, grid.ErrMissingEndpoints)
}

func TestClearSearch_KeepsEdits(t *testing.T) {
	g, err := grid.Parse("So#", "oo#", "**T")
	require.NoError(t, err)
	g.MarkPath(grid.Position{Row: 0, Col: 0})
	g.SetParent(grid.Position{Row: 1, Col: 0}, grid.Position{Row: 0, Col: 0})

	g.ClearSearch()

	assert.Equal(t, "S.#\n..#\n..T", g.String())
	_, ok := g.Parent(grid.Position{Row: 1, Col: 0})
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Search bookkeeping
//----------------------------------------------------------------------------//

func TestVisit_KeepsEndpoints(t *testing.T) {
	g, err := grid.Parse("S..", "...", "..T")
	require.NoError(t, err)

	g.Visit(grid.Position{Row: 0, Col: 0})
	g.Visit(grid.Position{Row: 2, Col: 2})
	g.Visit(grid.Position{Row: 1, Col: 1})

	assert.Equal(t, "S..\n.o.\n..T", g.String())
	assert.True(t, g.IsEndpoint(grid.Position{Row: 0, Col: 0}))
	assert.False(t, g.IsEndpoint(grid.Position{Row: 1, Col: 1}))
	assert.False(t, g.IsEndpoint(grid.Position{Row: 9, Col: 9}))
}

func TestMarkPath_EndpointIdentitySurvives(t *testing.T) {
	g, err := grid.Parse("ST", "..")
	require.NoError(t, err)
	g.MarkPath(grid.Position{Row: 0, Col: 0})
	g.MarkPath(grid.Position{Row: 0, Col: 1})

	assert.Equal(t, "**\n..", g.String())
	s, tg, err := g.Endpoints()
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 0, Col: 0}, s)
	assert.Equal(t, grid.Position{Row: 0, Col: 1}, tg)
}

func TestParentAndCost(t *testing.T) {
	g, _ := grid.New(3)
	p := grid.Position{Row: 1, Col: 1}
	from := grid.Position{Row: 0, Col: 1}

	_, ok := g.Parent(p)
	assert.False(t, ok)
	g.SetParent(p, from)
	got, ok := g.Parent(p)
	assert.True(t, ok)
	assert.Equal(t, from, got)

	g.SetCost(p, 1.5, 2)
	c := g.At(p)
	assert.Equal(t, 1.5, c.G)
	assert.Equal(t, 2.0, c.H)
	assert.Equal(t, 3.5, c.F())

	_, ok = g.Parent(grid.Position{Row: -1, Col: 0})
	assert.False(t, ok)
	assert.Equal(t, grid.Cell{}, g.At(grid.Position{Row: 5, Col: 5}))
}

//----------------------------------------------------------------------------//
// Kind text forms
//----------------------------------------------------------------------------//

func TestKind_TextRoundTrip(t *testing.T) {
	for _, k := range []grid.Kind{grid.Empty, grid.Start, grid.Target, grid.Obstacle, grid.Visited, grid.Path} {
		text, err := k.MarshalText()
		require.NoError(t, err)
		var back grid.Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}

	_, err := grid.ParseKind("lava")
	assert.ErrorIs(t, err, grid.ErrInvalidAssignment)
	_, err = grid.Kind(99).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "kind(99)", grid.Kind(99).String())
	assert.Equal(t, byte('?'), grid.Kind(99).Glyph())
}
