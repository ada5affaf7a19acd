package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/corridor9/internal/config"
	"chosenoffset.com/corridor9/internal/core/caster"
	"chosenoffset.com/corridor9/internal/game"
	"chosenoffset.com/corridor9/internal/render"
	"chosenoffset.com/corridor9/internal/world/maploader"
)

const frameInterval = 33 * time.Millisecond

// Each terminal cell shows two vertically stacked pixels through the upper
// half block, so the frame is twice as tall as the screen.
const halfBlock = '▀'

func main() {
	mapPath := flag.String("map", "", "path to a map file (overrides MAP_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *mapPath != "" {
		cfg.MapPath = *mapPath
	}

	m, err := loadMap(cfg.MapPath)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create terminal screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init terminal screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	c := caster.New(m.Grid, caster.Tuning{
		RelativeScreenSize: cfg.RelativeScreenSize,
		FocalLength:        cfg.FocalLength,
		IlluminationRadius: cfg.IlluminationRadius,
		MinimumLight:       cfg.MinimumLight,
	})
	world := game.NewWorld(m.Grid, m.Spawn, 0, cfg.MoveStep*4, cfg.RotateStep*5)
	renderer := render.NewRenderer(c)

	width, height := screen.Size()
	frame := render.NewFrame(width, height*2)

	// Terminals report key presses, not key state, so each keystroke is a
	// one-shot intent drained on the next tick. Same model as the SSH
	// frontend.
	intents := make(chan game.Input, 16)
	resized := make(chan struct{}, 1)
	quit := make(chan struct{})
	go pollEvents(screen, intents, resized, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-resized:
			screen.Sync()
			width, height = screen.Size()
			frame = render.NewFrame(width, height*2)
		case <-ticker.C:
			drainIntents(world, intents)
			pos, heading := world.PlayerState()
			renderer.RenderFrame(frame, pos, heading)
			blit(screen, frame)
			screen.Show()
		}
	}
}

func pollEvents(screen tcell.Screen, intents chan<- game.Input, resized chan<- struct{}, quit chan<- struct{}) {
	for {
		switch event := screen.PollEvent().(type) {
		case *tcell.EventResize:
			select {
			case resized <- struct{}{}:
			default:
			}
		case *tcell.EventKey:
			var in game.Input
			switch {
			case event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC:
				close(quit)
				return
			case event.Key() == tcell.KeyUp:
				in.MoveForward = true
			case event.Key() == tcell.KeyDown:
				in.MoveBackward = true
			case event.Key() == tcell.KeyLeft:
				in.RotateLeft = true
			case event.Key() == tcell.KeyRight:
				in.RotateRight = true
			case event.Key() == tcell.KeyRune:
				switch event.Rune() {
				case 'q', 'Q':
					close(quit)
					return
				case 'w', 'W':
					in.MoveForward = true
				case 's', 'S':
					in.MoveBackward = true
				case 'a', 'A':
					in.RotateLeft = true
				case 'd', 'D':
					in.RotateRight = true
				}
			}
			if in != (game.Input{}) {
				select {
				case intents <- in:
				default:
				}
			}
		}
	}
}

func drainIntents(world *game.World, intents <-chan game.Input) {
	for {
		select {
		case in := <-intents:
			world.Tick(in)
		default:
			return
		}
	}
}

// blit maps two frame rows onto one terminal row: the upper pixel is the
// half block's foreground, the lower its background.
func blit(screen tcell.Screen, frame *render.Frame) {
	pix := frame.Pix()
	width := frame.Width()
	for y := 0; y+1 < frame.Height(); y += 2 {
		for x := 0; x < width; x++ {
			upper := 4 * (y*width + x)
			lower := 4 * ((y+1)*width + x)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(pix[upper]), int32(pix[upper+1]), int32(pix[upper+2]))).
				Background(tcell.NewRGBColor(int32(pix[lower]), int32(pix[lower+1]), int32(pix[lower+2])))
			screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
}

func loadMap(path string) (*maploader.Map, error) {
	if path == "" {
		return maploader.Parse(maploader.DefaultMap)
	}
	return maploader.Load(path)
}
