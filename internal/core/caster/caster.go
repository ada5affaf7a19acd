// Package caster performs the per-column ray cast: it maps a screen column
// to a viewing angle, grows a ray through the grid until it strikes a wall
// or leaves the map, and classifies the result as a lit, distance-corrected
// hit.
package caster

import (
	"math"

	"chosenoffset.com/corridor9/internal/core/geom"
	"chosenoffset.com/corridor9/internal/core/ray"
	"chosenoffset.com/corridor9/internal/render/lighting"
	"chosenoffset.com/corridor9/internal/world/grid"
)

// Tuning holds the projection and lighting parameters of a caster.
type Tuning struct {
	// RelativeScreenSize is the width of the virtual screen plane in
	// world units.
	RelativeScreenSize float64
	// FocalLength is the distance from the eye to the screen plane.
	FocalLength float64
	// IlluminationRadius is the distance at which walls fall to minimum
	// brightness.
	IlluminationRadius float64
	// MinimumLight is the brightness floor in [0, 1].
	MinimumLight float64
}

// DefaultTuning is a 90-degree-ish field of view with lighting that spans
// a dozen tiles.
var DefaultTuning = Tuning{
	RelativeScreenSize: 2,
	FocalLength:        1,
	IlluminationRadius: 12,
	MinimumLight:       0.15,
}

// Hit is the result of casting one column.
type Hit struct {
	// Wall reports whether the ray struck a wall before the cutoff.
	Wall bool
	// Color is the illuminated wall color. Meaningless when Wall is false.
	Color grid.Color
	// Distance is the fisheye-corrected distance to the wall: the raw ray
	// length projected onto the viewing axis.
	Distance float64
}

// Caster casts rays into a grid.
type Caster struct {
	grid   *grid.Grid
	tuning Tuning
}

// New returns a caster over the given grid.
func New(g *grid.Grid, tuning Tuning) *Caster {
	return &Caster{grid: g, tuning: tuning}
}

// RelativeAngle maps a screen column to its viewing angle relative to the
// heading. Column 0 looks furthest left, the center column looks straight
// ahead.
func (c *Caster) RelativeAngle(column, screenWidth int) float64 {
	offset := (float64(column)/float64(screenWidth) - 0.5) * c.tuning.RelativeScreenSize
	return math.Atan(offset / c.tuning.FocalLength)
}

// CastColumn casts the ray for one screen column from the given viewer
// position and heading.
func (c *Caster) CastColumn(pos geom.Point, heading float64, column, screenWidth int) Hit {
	relative := c.RelativeAngle(column, screenWidth)
	angle := heading + relative

	r := ray.New(pos, angle)
	for r.Length() <= c.grid.MaxDistance() {
		r = r.Grow()
		tile := c.grid.TileAt(r.End, angle)
		if !tile.IsWall() {
			continue
		}
		raw := r.Length()
		return Hit{
			Wall: true,
			Color: lighting.Illuminate(
				tile.Color(), r.End, angle, raw,
				c.tuning.IlluminationRadius, c.tuning.MinimumLight,
			),
			// Off-center rays travel further than the perpendicular
			// distance to the wall; projecting onto the viewing axis
			// keeps straight walls straight at the screen edges.
			Distance: raw * math.Cos(relative),
		}
	}
	return Hit{}
}
