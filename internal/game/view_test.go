package game

import (
	"errors"
	"math"
	"testing"

	"chosenoffset.com/corridor9/internal/core/caster"
	"chosenoffset.com/corridor9/internal/render"
	"chosenoffset.com/corridor9/internal/world/maploader"
)

type fakeInput struct {
	down map[render.Key]bool
}

func (f *fakeInput) IsKeyPressed(key render.Key) bool { return f.down[key] }

type fakeScreen struct {
	width, height int
	written       []byte
}

func (f *fakeScreen) Size() (int, int)       { return f.width, f.height }
func (f *fakeScreen) WritePixels(pix []byte) { f.written = append([]byte(nil), pix...) }

func newTestView(t *testing.T, input *fakeInput) *View {
	t.Helper()
	m, err := maploader.Parse(maploader.DefaultMap)
	if err != nil {
		t.Fatal(err)
	}
	world := NewWorld(m.Grid, m.Spawn, 0, 0.1, 0.05)
	renderer := render.NewRenderer(caster.New(m.Grid, caster.DefaultTuning))
	return NewView(world, renderer, render.NewFrame(32, 24), input)
}

func TestViewUpdateAppliesInput(t *testing.T) {
	input := &fakeInput{down: map[render.Key]bool{render.KeyD: true}}
	v := newTestView(t, input)
	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, h := v.world.PlayerState(); math.Abs(h-0.05) > 1e-9 {
		t.Errorf("heading = %f, want 0.05", h)
	}

	// Arrow keys drive the same intents.
	input.down = map[render.Key]bool{render.KeyLeft: true}
	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, h := v.world.PlayerState(); math.Abs(h) > 1e-9 {
		t.Errorf("heading = %f, want 0 after rotating back", h)
	}
}

func TestViewUpdateQuit(t *testing.T) {
	for _, key := range []render.Key{render.KeyEscape, render.KeyQ} {
		v := newTestView(t, &fakeInput{down: map[render.Key]bool{key: true}})
		if err := v.Update(); !errors.Is(err, render.ErrQuit) {
			t.Errorf("key %d: Update = %v, want ErrQuit", key, err)
		}
	}
}

func TestViewDrawUploadsFrame(t *testing.T) {
	v := newTestView(t, &fakeInput{down: map[render.Key]bool{}})
	screen := &fakeScreen{width: 32, height: 24}
	v.Draw(screen)
	if len(screen.written) != 4*32*24 {
		t.Fatalf("wrote %d bytes, want %d", len(screen.written), 4*32*24)
	}
	// Inside an enclosed map something must be non-black even through the
	// startup fade's first frame.
	v.fadeDone = true
	v.Draw(screen)
	lit := false
	for i := 0; i < len(screen.written); i += 4 {
		if screen.written[i] != 0 || screen.written[i+1] != 0 || screen.written[i+2] != 0 {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("frame is entirely black")
	}
}

func TestViewLayout(t *testing.T) {
	v := newTestView(t, &fakeInput{})
	w, h := v.Layout(1920, 1080)
	if w != 32 || h != 24 {
		t.Errorf("Layout = %dx%d, want frame size 32x24", w, h)
	}
}
