package render

import (
	"chosenoffset.com/corridor9/internal/core/caster"
	"chosenoffset.com/corridor9/internal/world/grid"
)

// floorColor is the base grey of the floor gradient; rows nearer the bottom
// of the screen show more of it.
var floorColor = grid.Color{R: 70, G: 70, B: 70}

// ceilingColor is solid black.
var ceilingColor = grid.Color{}

// DrawColumn paints one vertical strip: ceiling, a centered wall band
// scaled by 1/distance, and a floor gradient. A miss draws a zero-height
// wall, leaving just ceiling and floor.
func DrawColumn(canvas Canvas, column int, hit caster.Hit) {
	height := canvas.Height()

	normalized := 0.0
	if hit.Wall {
		normalized = 1 / hit.Distance
		if normalized > 1 {
			normalized = 1
		}
	}
	wallHeight := int(normalized * float64(height))
	top := (height - wallHeight) / 2
	bottom := top + wallHeight

	for y := 0; y < top; y++ {
		canvas.SetPixel(column, y, ceilingColor)
	}
	for y := top; y < bottom; y++ {
		canvas.SetPixel(column, y, hit.Color)
	}
	for y := bottom; y < height; y++ {
		canvas.SetPixel(column, y, floorColor.Scale(float64(y)/float64(height)))
	}
}
