package main

import (
	"flag"
	"log"

	"chosenoffset.com/corridor9/internal/config"
	"chosenoffset.com/corridor9/internal/core/caster"
	"chosenoffset.com/corridor9/internal/game"
	"chosenoffset.com/corridor9/internal/render"
	ebitenrender "chosenoffset.com/corridor9/internal/render/ebiten"
	"chosenoffset.com/corridor9/internal/world/maploader"
)

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

	c := caster.New(m.Grid, caster.Tuning{
		RelativeScreenSize: cfg.RelativeScreenSize,
		FocalLength:        cfg.FocalLength,
		IlluminationRadius: cfg.IlluminationRadius,
		MinimumLight:       cfg.MinimumLight,
	})
	world := game.NewWorld(m.Grid, m.Spawn, 0, cfg.MoveStep, cfg.RotateStep)
	frame := render.NewFrame(cfg.RenderWidth, cfg.RenderHeight)
	view := game.NewView(world, render.NewRenderer(c), frame, ebitenrender.NewInputManager())

	engine := ebitenrender.NewEngine()
	engine.SetWindowSize(cfg.RenderWidth*2, cfg.RenderHeight*2)
	engine.SetWindowTitle("Corridor9")

	log.Println("Starting corridor9...")
	if err := engine.RunGame(view); err != nil {
		log.Fatal(err)
	}
}

func loadMap(path string) (*maploader.Map, error) {
	if path == "" {
		return maploader.Parse(maploader.DefaultMap)
	}
	return maploader.Load(path)
}
