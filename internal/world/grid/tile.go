package grid

// Color is an 8-bit RGB wall color.
type Color struct {
	R, G, B uint8
}

// Named wall colors used by the map format.
var (
	Red    = Color{R: 180, G: 30, B: 30}
	Green  = Color{R: 40, G: 160, B: 40}
	Blue   = Color{R: 40, G: 70, B: 190}
	Yellow = Color{R: 200, G: 180, B: 40}
	Orange = Color{R: 220, G: 120, B: 30}
)

// Scale multiplies each channel by pct and clamps the result to the
// channel's original value. Lighting can only darken a wall, never
// brighten it: percentages above 1 are a no-op and negative percentages
// clamp to black.
func (c Color) Scale(pct float64) Color {
	return Color{
		R: scaleChannel(c.R, pct),
		G: scaleChannel(c.G, pct),
		B: scaleChannel(c.B, pct),
	}
}

func scaleChannel(v uint8, pct float64) uint8 {
	s := float64(v) * pct
	if s <= 0 {
		return 0
	}
	if s >= float64(v) {
		return v
	}
	return uint8(s)
}

// Tile is a single grid cell: either empty or an opaque colored wall.
type Tile struct {
	wall  bool
	color Color
}

// Empty returns the empty tile.
func Empty() Tile {
	return Tile{}
}

// Wall returns a wall tile of the given color.
func Wall(c Color) Tile {
	return Tile{wall: true, color: c}
}

// IsWall reports whether the tile is a wall.
func (t Tile) IsWall() bool {
	return t.wall
}

// Color returns the wall color. The zero Color for empty tiles.
func (t Tile) Color() Color {
	return t.color
}
