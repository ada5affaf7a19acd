// Package render holds the software rendering surface and the
// backend-agnostic interfaces the frontends implement. Game logic only ever
// sees these interfaces; the ebiten backend lives in render/ebiten and the
// terminal backends present frames through render/ansi.
package render

import (
	"errors"

	"chosenoffset.com/corridor9/internal/core/caster"
	"chosenoffset.com/corridor9/internal/core/geom"
	"chosenoffset.com/corridor9/internal/world/grid"
)

// ErrQuit is returned from a Game's Update to request a clean shutdown.
// Backends translate it into their own termination mechanism.
var ErrQuit = errors.New("quit requested")

// Canvas is a write-only width x height pixel surface. The core draws
// columns into a Canvas and never reads pixels back.
type Canvas interface {
	SetPixel(x, y int, c grid.Color)
	Width() int
	Height() int
}

// Renderer paints full frames, one cast column at a time.
type Renderer struct {
	caster *caster.Caster
}

// NewRenderer returns a renderer casting into the given caster's grid.
func NewRenderer(c *caster.Caster) *Renderer {
	return &Renderer{caster: c}
}

// RenderFrame draws every column of the canvas from a single viewer
// snapshot. Callers must not mutate the viewer position mid-frame; passing
// position and heading by value here is what keeps one frame consistent.
func (r *Renderer) RenderFrame(canvas Canvas, pos geom.Point, heading float64) {
	width := canvas.Width()
	for column := 0; column < width; column++ {
		DrawColumn(canvas, column, r.caster.CastColumn(pos, heading, column, width))
	}
}

// InputManager reports key state for a frontend.
type InputManager interface {
	IsKeyPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQ
	KeyEscape
)

// Image is a presentable surface owned by a windowing backend.
type Image interface {
	// Size returns the width and height in pixels.
	Size() (width, height int)

	// WritePixels replaces the image content with raw RGBA bytes, which
	// must be exactly 4*width*height long.
	WritePixels(pix []byte)
}

// Game is the per-tick contract a windowing backend drives: update logic,
// then draw into the backend's screen image.
type Game interface {
	// Update advances game logic one tick. Returning ErrQuit stops the
	// engine cleanly; any other error aborts it.
	Update() error

	// Draw presents the current frame onto the screen image.
	Draw(screen Image)

	// Layout accepts the window size and returns the logical screen size
	// the backend should hand to Draw.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages a window and the game loop.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// RunGame runs the game loop. Blocks until the game ends.
	RunGame(game Game) error
}
