// Package maploader parses plain-text map files into tile grids.
//
// Each line is one row of tiles, one character per tile:
//
//	' '  empty floor
//	'R'  red wall        'G'  green wall
//	'B'  blue wall       'Y'  yellow wall
//	'O'  orange wall
//	'@'  player spawn (an empty tile)
//
// Any other character is a red wall. That fallback is deliberate: a stray
// character in a hand-edited map shows up as a visible wall instead of
// failing the load. Rows may have different lengths; tiles beyond a row's
// end are empty.
package maploader

import (
	"fmt"
	"os"
	"strings"

	"chosenoffset.com/corridor9/internal/core/geom"
	"chosenoffset.com/corridor9/internal/world/grid"
)

// Map is a parsed map: the tile grid plus the player spawn point.
type Map struct {
	Grid  *grid.Grid
	Spawn geom.Point
}

// DefaultMap is a built-in arena so every frontend can run without a map
// file on disk.
const DefaultMap = `RRRRRRRRRRRRRRRR
R              R
R  GG      BB  R
R  GG      BB  R
R              R
R      @       R
R              R
R  YY      OO  R
R  YY      OO  R
R              R
RRRRRRRRRRRRRRRR`

// Load reads and parses a map file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}
	m, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}
	return m, nil
}

// Parse builds a Map from map text. A map with no tiles is rejected. When
// the text carries no '@' marker the spawn defaults to the grid center.
func Parse(text string) (*Map, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	rows := make([][]grid.Tile, 0, len(lines))
	var spawn geom.Point
	hasSpawn := false
	widest := 0

	for y, line := range lines {
		row := make([]grid.Tile, len(line))
		for x, ch := range []byte(line) {
			tile, isSpawn := parseTile(ch)
			if isSpawn {
				if hasSpawn {
					return nil, fmt.Errorf("duplicate spawn marker at row %d column %d", y, x)
				}
				hasSpawn = true
				spawn = geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			}
			row[x] = tile
		}
		if len(row) > widest {
			widest = len(row)
		}
		rows = append(rows, row)
	}

	if widest == 0 {
		return nil, fmt.Errorf("map has no tiles")
	}
	if !hasSpawn {
		spawn = geom.Point{X: float64(widest) / 2, Y: float64(len(rows)) / 2}
	}

	return &Map{Grid: grid.New(rows), Spawn: spawn}, nil
}

func parseTile(ch byte) (tile grid.Tile, isSpawn bool) {
	switch ch {
	case ' ':
		return grid.Empty(), false
	case '@':
		return grid.Empty(), true
	case 'R':
		return grid.Wall(grid.Red), false
	case 'G':
		return grid.Wall(grid.Green), false
	case 'B':
		return grid.Wall(grid.Blue), false
	case 'Y':
		return grid.Wall(grid.Yellow), false
	case 'O':
		return grid.Wall(grid.Orange), false
	default:
		return grid.Wall(grid.Red), false
	}
}
