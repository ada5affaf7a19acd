// Package grid models the tile world: a rectangular (possibly jagged)
// array of tiles addressed by continuous world coordinates. Lookups outside
// the grid resolve to empty tiles so rays can leave the map without error.
package grid

import (
	"math"

	"chosenoffset.com/corridor9/internal/core/geom"
)

// Grid is an immutable 2D tile lookup. Row y, column x. Rows may have
// different lengths; columns beyond a row's length are empty.
type Grid struct {
	rows        [][]Tile
	maxDistance float64
}

// New builds a grid from tile rows. The rows slice is retained and must not
// be modified by the caller afterwards.
func New(rows [][]Tile) *Grid {
	widest := 0
	for _, row := range rows {
		if len(row) > widest {
			widest = len(row)
		}
	}
	return &Grid{
		rows: rows,
		// No in-grid path is longer than height+width, so this bounds
		// every ray scan.
		maxDistance: float64(len(rows) + widest),
	}
}

// MaxDistance returns the ray-growth cutoff for this grid.
func (g *Grid) MaxDistance() float64 {
	return g.maxDistance
}

// Rows returns the number of tile rows.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// TileAt resolves a continuous point to the tile it lies in. The angle
// disambiguates points sitting exactly on a grid line: the tile on the side
// the ray is entering from is chosen, per axis, so a ray travelling in the
// Decreasing direction that lands on x=3 reads the tile at x=2.
func (g *Grid) TileAt(p geom.Point, angle float64) Tile {
	x := resolveCoord(p.X, geom.DirectionOn(angle, geom.AxisX))
	y := resolveCoord(p.Y, geom.DirectionOn(angle, geom.AxisY))
	return g.tile(x, y)
}

func (g *Grid) tile(x, y int) Tile {
	if y < 0 || y >= len(g.rows) {
		return Empty()
	}
	row := g.rows[y]
	if x < 0 || x >= len(row) {
		return Empty()
	}
	return row[x]
}

func resolveCoord(v float64, dir geom.Direction) int {
	if v == math.Trunc(v) && dir == geom.Decreasing {
		return int(v) - 1
	}
	return int(math.Floor(v))
}
