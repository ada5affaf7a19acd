package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"chosenoffset.com/corridor9/internal/render"
)

const tickSeconds = 1.0 / 60.0

// View drives a World behind a windowing backend: it polls input, ticks the
// world, and presents rendered frames. It implements render.Game.
type View struct {
	world    *World
	renderer *render.Renderer
	frame    *render.Frame
	input    render.InputManager

	// Fade-in from black on startup.
	fade     *gween.Tween
	fadePct  float64
	fadeDone bool
}

// NewView wires a world to a renderer, frame and input source.
func NewView(world *World, renderer *render.Renderer, frame *render.Frame, input render.InputManager) *View {
	return &View{
		world:    world,
		renderer: renderer,
		frame:    frame,
		input:    input,
		fade:     gween.New(0, 1, 1.2, ease.OutQuad),
	}
}

// Update polls intents and advances the world one tick.
func (v *View) Update() error {
	if v.input.IsKeyPressed(render.KeyEscape) || v.input.IsKeyPressed(render.KeyQ) {
		return render.ErrQuit
	}
	v.world.Tick(Input{
		RotateLeft:   v.input.IsKeyPressed(render.KeyA) || v.input.IsKeyPressed(render.KeyLeft),
		RotateRight:  v.input.IsKeyPressed(render.KeyD) || v.input.IsKeyPressed(render.KeyRight),
		MoveForward:  v.input.IsKeyPressed(render.KeyW) || v.input.IsKeyPressed(render.KeyUp),
		MoveBackward: v.input.IsKeyPressed(render.KeyS) || v.input.IsKeyPressed(render.KeyDown),
	})
	if !v.fadeDone {
		pct, done := v.fade.Update(float32(tickSeconds))
		v.fadePct, v.fadeDone = float64(pct), done
	}
	return nil
}

// Draw renders the frame from one player snapshot and uploads it.
func (v *View) Draw(screen render.Image) {
	pos, heading := v.world.PlayerState()
	v.renderer.RenderFrame(v.frame, pos, heading)
	if !v.fadeDone {
		v.frame.Dim(v.fadePct)
	}
	screen.WritePixels(v.frame.Pix())
}

// Layout pins the logical screen to the frame size; the backend scales it
// to the window.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.frame.Width(), v.frame.Height()
}
