// SPDX-License-Identifier: MIT
// Package: composition
//
// grid.go: uniform-grid index over placed circles.
//
// Invariant:
//   - A circle is filed under every cell its bounding square touches, so two
//     overlapping disks always share at least one cell and collides is exact
//     (same answer as a linear scan).
//
// Complexity:
//   - insert/collides are O(cells covered + circles filed in them).

package composition

import "math"

type cellKey [2]int

type grid struct {
	cell    float64
	circles []Circle
	cells   map[cellKey][]int32 // indices into circles
}

func newGrid(cell float64) *grid {
	return &grid{cell: cell, cells: make(map[cellKey][]int32)}
}

// span returns the inclusive cell range covered by c's bounding square.
func (g *grid) span(c Circle) (x0, y0, x1, y1 int) {
	r := c.Radius()
	x0 = int(math.Floor((c.Center.X() - r) / g.cell))
	x1 = int(math.Floor((c.Center.X() + r) / g.cell))
	y0 = int(math.Floor((c.Center.Y() - r) / g.cell))
	y1 = int(math.Floor((c.Center.Y() + r) / g.cell))
	return x0, y0, x1, y1
}

func (g *grid) insert(c Circle) {
	id := int32(len(g.circles))
	g.circles = append(g.circles, c)
	x0, y0, x1, y1 := g.span(c)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			k := cellKey{x, y}
			g.cells[k] = append(g.cells[k], id)
		}
	}
}

func (g *grid) collides(c Circle) bool {
	x0, y0, x1, y1 := g.span(c)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for _, id := range g.cells[cellKey{x, y}] {
				if c.Collides(g.circles[id]) {
					return true
				}
			}
		}
	}
	return false
}

// Len reports the number of inserted circles.
func (g *grid) Len() int { return len(g.circles) }
