package main

import (
	"flag"
	"log"

	"chosenoffset.com/corridor9/internal/config"
	"chosenoffset.com/corridor9/internal/server"
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

	errCh := make(chan error, 2)
	go func() {
		errCh <- server.NewSSHServer(cfg, m).Start()
	}()
	go func() {
		errCh <- server.NewWebServer(cfg, m).Start()
	}()

	// Either listener failing takes the whole process down.
	log.Fatal(<-errCh)
}

func loadMap(path string) (*maploader.Map, error) {
	if path == "" {
		return maploader.Parse(maploader.DefaultMap)
	}
	return maploader.Load(path)
}
