// Package gridtest holds grid fixtures shared by strategy tests.
package gridtest

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// Random builds an n×n grid with Start at (0,0), Target at (n-1,n-1) and
// obstacles scattered with the given density from a deterministic seed.
func Random(seed int64, n int, density float64) *grid.Grid {
	r := rand.New(rand.NewSource(seed))
	g, err := grid.New(n)
	if err != nil {
		panic(err)
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if r.Float64() < density {
				_ = g.SetKind(row, col, grid.Obstacle)
			}
		}
	}
	_ = g.SetKind(0, 0, grid.Empty)
	_ = g.SetKind(n-1, n-1, grid.Empty)
	_ = g.SetKind(0, 0, grid.Start)
	_ = g.SetKind(n-1, n-1, grid.Target)

	return g
}

// HopDistance returns the fewest moves from "from" to "to" over non-obstacle
// cells, or -1 if unreachable. It relaxes every cell until nothing changes,
// independently of any queue order, so strategy tests can cross-check routes.
func HopDistance(g *grid.Grid, from, to grid.Position) int {
	n := g.Dimension()
	const inf = 1 << 30
	dist := make([]int, n*n)
	for i := range dist {
		dist[i] = inf
	}
	dist[g.Index(from)] = 0

	for changed := true; changed; {
		changed = false
		for c := range g.Each() {
			if c.Kind == grid.Obstacle {
				continue
			}
			i := g.Index(c.Position)
			for _, nb := range g.Neighbors(c.Position) {
				if d := dist[g.Index(nb)] + 1; d < dist[i] {
					dist[i] = d
					changed = true
				}
			}
		}
	}
	if d := dist[g.Index(to)]; d < inf {
		return d
	}
	return -1
}
