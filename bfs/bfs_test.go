package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/gridtest"
	"github.com/katalvlaran/gridpath/search"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

// collect drives a BFS run on g and returns every emitted event.
func collect(t *testing.T, g *grid.Grid) ([]search.Event, search.Outcome) {
	t.Helper()
	var events []search.Event
	out, err := bfs.Search(g, search.WithOnStep(func(ev search.Event) {
		events = append(events, ev)
	}))
	require.NoError(t, err)
	return events, out
}

// TestBFS_Errors verifies that incomplete grids are rejected.
func TestBFS_Errors(t *testing.T) {
	g, _ := grid.Parse("S..", "...", "...")
	_, err := bfs.Search(g)
	assert.ErrorIs(t, err, grid.ErrMissingEndpoints)

	g2, _ := grid.Parse("S..", "...", "..T")
	g2.Reset()
	_, err = bfs.New(g2)
	assert.ErrorIs(t, err, grid.ErrMissingEndpoints)
}

// TestBFS_StraightLine covers an obstacle-free 5×5 grid: the route runs
// along row 0 and has 5 cells.
func TestBFS_StraightLine(t *testing.T) {
	g, _ := grid.New(5)
	require.NoError(t, g.SetKind(0, 0, grid.Start))
	require.NoError(t, g.SetKind(0, 4, grid.Target))

	_, out := collect(t, g)
	assert.True(t, out.Found)
	assert.Equal(t, bfs.Name, out.Strategy)
	assert.Equal(t, []grid.Position{pos(0, 0), pos(0, 1), pos(0, 2), pos(0, 3), pos(0, 4)}, out.Path)
	assert.Equal(t, 4.0, out.Cost)
	assert.Equal(t, "*****", g.Rows()[0])
}

// TestBFS_WallDetours covers vertical walls at column 2 that force detours.
func TestBFS_WallDetours(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		cells int
		via   grid.Position
	}{
		{
			name:  "GapAtBottom",
			rows:  []string{"S.#.T", "..#..", "..#..", "..#..", "....."},
			cells: 13,
			via:   pos(4, 2),
		},
		{
			name:  "GapInMiddle",
			rows:  []string{"S.#.T", "..#..", ".....", "..#..", "..#.."},
			cells: 9,
			via:   pos(2, 2),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(tc.rows...)
			require.NoError(t, err)
			_, out := collect(t, g)
			require.True(t, out.Found)
			assert.Len(t, out.Path, tc.cells)
			assert.Contains(t, out.Path, tc.via)
			assert.Equal(t, pos(0, 0), out.Path[0])
			assert.Equal(t, pos(0, 4), out.Path[len(out.Path)-1])
		})
	}
}

// TestBFS_TraceSmall checks the exact event sequence on a 2×2 grid.
func TestBFS_TraceSmall(t *testing.T) {
	g, _ := grid.Parse("S.", ".T")
	events, out := collect(t, g)

	want := []search.Event{
		{Step: 1, Kind: search.Expanded, Cell: pos(0, 0), Discovered: []grid.Position{pos(1, 0), pos(0, 1)}, Frontier: 2},
		{Step: 2, Kind: search.Expanded, Cell: pos(1, 0), Discovered: []grid.Position{pos(1, 1)}, Frontier: 2},
		{Step: 3, Kind: search.Expanded, Cell: pos(0, 1), Frontier: 1},
		{Step: 4, Kind: search.Found, Cell: pos(1, 1), Frontier: 0, Path: []grid.Position{pos(0, 0), pos(1, 0), pos(1, 1)}},
	}
	assert.Equal(t, want, events)
	assert.Equal(t, 4, out.Operations)
	assert.Equal(t, "*o\n**", g.String())
}

// TestBFS_Enclosed verifies NotFound and that every reachable cell is
// processed exactly once and marked Visited.
//
// Grid:
//
//	S.#..
//	..#..
//	###..
//	.....
//	....T
func TestBFS_Enclosed(t *testing.T) {
	g, err := grid.Parse("S.#..", "..#..", "###..", ".....", "....T")
	require.NoError(t, err)
	events, out := collect(t, g)

	assert.False(t, out.Found)
	assert.Nil(t, out.Path)
	assert.Equal(t, 4, out.Operations)

	seen := map[grid.Position]int{}
	for _, ev := range events {
		assert.Equal(t, search.Expanded, ev.Kind)
		seen[ev.Cell]++
	}
	reachable := g.Reachable(pos(0, 0))
	assert.Len(t, seen, len(reachable))
	for _, p := range reachable {
		assert.Equal(t, 1, seen[p], "cell %s", p)
		if p != pos(0, 0) {
			assert.Equal(t, grid.Visited, g.At(p).Kind, "cell %s", p)
		}
	}
	assert.Equal(t, grid.Start, g.At(pos(0, 0)).Kind)
	assert.Equal(t, grid.Target, g.At(pos(4, 4)).Kind)
}

// TestBFS_ShortestOnRandomGrids cross-checks route length against an
// independent relaxation on seeded random grids.
func TestBFS_ShortestOnRandomGrids(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g := gridtest.Random(seed, 12, 0.3)
		want := gridtest.HopDistance(g, pos(0, 0), pos(11, 11))

		out, err := bfs.Search(g)
		require.NoError(t, err)
		if want < 0 {
			assert.False(t, out.Found, "seed %d", seed)
			continue
		}
		require.True(t, out.Found, "seed %d", seed)
		assert.Len(t, out.Path, want+1, "seed %d", seed)
		for i := 1; i < len(out.Path); i++ {
			assert.Equal(t, 1.0, cost.Step(out.Path[i-1], out.Path[i]), "seed %d", seed)
		}
	}
}

// TestBFS_RerunClearsState runs twice on the same grid, editing in between.
func TestBFS_RerunClearsState(t *testing.T) {
	g, _ := grid.Parse("S..", "...", "..T")
	_, first := collect(t, g)
	require.True(t, first.Found)

	require.NoError(t, g.SetKind(0, 1, grid.Obstacle))
	require.NoError(t, g.SetKind(1, 0, grid.Obstacle))
	events, second := collect(t, g)

	assert.False(t, second.Found)
	assert.Len(t, events, 1)
	assert.Equal(t, "S#.\n#..\n..T", g.String())
}

// TestRun_StepAfterDone ensures a finished run emits nothing further.
func TestRun_StepAfterDone(t *testing.T) {
	g, _ := grid.Parse("ST", "..")
	run, err := bfs.New(g)
	require.NoError(t, err)

	out, err := run.Outcome()
	require.NoError(t, err)
	assert.False(t, out.Found, "outcome before completion")

	n := 0
	for range search.Events(run) {
		n++
	}
	assert.Equal(t, 3, n)
	_, ok := run.Step()
	assert.False(t, ok)

	out, err = run.Outcome()
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, []grid.Position{pos(0, 0), pos(0, 1)}, out.Path)
}
