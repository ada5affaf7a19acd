package render

import (
	"image/color"
	"testing"

	"chosenoffset.com/corridor9/internal/core/caster"
	"chosenoffset.com/corridor9/internal/core/geom"
	"chosenoffset.com/corridor9/internal/world/grid"
	"chosenoffset.com/corridor9/internal/world/maploader"
)

func TestDrawColumnMiss(t *testing.T) {
	f := NewFrame(1, 10)
	DrawColumn(f, 0, caster.Hit{})
	// No wall band: ceiling in the top half, floor gradient in the bottom.
	if got := f.At(0, 0); got != (color.RGBA{A: 0xff}) {
		t.Errorf("top row = %v, want black ceiling", got)
	}
	bottom := f.At(0, 9).(color.RGBA)
	if bottom.R == 0 {
		t.Error("bottom row should show the floor gradient")
	}
	mid := f.At(0, 6).(color.RGBA)
	if mid.R >= bottom.R {
		t.Errorf("floor gradient should brighten downward: row6 %d, row9 %d", mid.R, bottom.R)
	}
}

func TestDrawColumnWallBandCentered(t *testing.T) {
	f := NewFrame(1, 100)
	white := grid.Color{R: 255, G: 255, B: 255}
	DrawColumn(f, 0, caster.Hit{Wall: true, Color: white, Distance: 2})
	// 1/2 of the height, centered: wall rows [25, 75).
	for _, y := range []int{25, 50, 74} {
		if got := f.At(0, y); got != (color.RGBA{R: 255, G: 255, B: 255, A: 0xff}) {
			t.Errorf("row %d = %v, want wall color", y, got)
		}
	}
	if got := f.At(0, 24); got != (color.RGBA{A: 0xff}) {
		t.Errorf("row 24 = %v, want ceiling", got)
	}
	if got := f.At(0, 75).(color.RGBA); got.R == 255 || got.R == 0 {
		t.Errorf("row 75 = %v, want floor gradient", got)
	}
}

func TestDrawColumnClampsNearWalls(t *testing.T) {
	f := NewFrame(1, 50)
	DrawColumn(f, 0, caster.Hit{Wall: true, Color: grid.Red, Distance: 0.25})
	// Closer than one unit fills the whole column with wall.
	for _, y := range []int{0, 25, 49} {
		got := f.At(0, y).(color.RGBA)
		if got.R != grid.Red.R {
			t.Errorf("row %d = %v, want full wall", y, got)
		}
	}
}

func TestRenderFrameEmptyGrid(t *testing.T) {
	rows := make([][]grid.Tile, 3)
	for y := range rows {
		rows[y] = make([]grid.Tile, 3)
	}
	r := NewRenderer(caster.New(grid.New(rows), caster.DefaultTuning))
	f := NewFrame(40, 30)
	r.RenderFrame(f, geom.Point{X: 1.5, Y: 1.5}, 0.3)
	// Pure ceiling and floor: the middle row splits them, and no column
	// carries a wall band, so row 0 is black everywhere.
	for x := 0; x < 40; x++ {
		if got := f.At(x, 0); got != (color.RGBA{A: 0xff}) {
			t.Fatalf("column %d: top row = %v, want ceiling", x, got)
		}
		if got := f.At(x, 29).(color.RGBA); got.R == 0 {
			t.Fatalf("column %d: bottom row should be floor gradient", x)
		}
	}
}

func TestRenderFrameEnclosedMap(t *testing.T) {
	m, err := maploader.Parse(maploader.DefaultMap)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(caster.New(m.Grid, caster.DefaultTuning))
	f := NewFrame(64, 48)
	r.RenderFrame(f, m.Spawn, 0)
	// Every column faces a wall, so the middle row is wall-lit everywhere.
	for x := 0; x < 64; x++ {
		got := f.At(x, 24).(color.RGBA)
		if got.R == 0 && got.G == 0 && got.B == 0 {
			t.Fatalf("column %d: center row is black, expected a lit wall", x)
		}
	}
}
