package maploader

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/corridor9/internal/core/geom"
	"chosenoffset.com/corridor9/internal/world/grid"
)

func TestParseTiles(t *testing.T) {
	m, err := Parse("RGB\nY O\n @ ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	checks := []struct {
		x, y float64
		want grid.Tile
	}{
		{0.5, 0.5, grid.Wall(grid.Red)},
		{1.5, 0.5, grid.Wall(grid.Green)},
		{2.5, 0.5, grid.Wall(grid.Blue)},
		{0.5, 1.5, grid.Wall(grid.Yellow)},
		{1.5, 1.5, grid.Empty()},
		{2.5, 1.5, grid.Wall(grid.Orange)},
		{1.5, 2.5, grid.Empty()}, // spawn marker is floor
	}
	for _, c := range checks {
		if got := m.Grid.TileAt(geom.Point{X: c.x, Y: c.y}, 0); got != c.want {
			t.Errorf("tile at (%f, %f) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestParseSpawn(t *testing.T) {
	m, err := Parse("RRR\nR@R\nRRR")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Spawn != (geom.Point{X: 1.5, Y: 1.5}) {
		t.Errorf("Spawn = %v, want (1.5, 1.5)", m.Spawn)
	}
}

func TestParseDefaultSpawnIsGridCenter(t *testing.T) {
	m, err := Parse("RRRR\nR  R\nRRRR")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Spawn != (geom.Point{X: 2, Y: 1.5}) {
		t.Errorf("Spawn = %v, want grid center (2, 1.5)", m.Spawn)
	}
}

func TestParseDuplicateSpawnRejected(t *testing.T) {
	if _, err := Parse("@@"); err == nil {
		t.Fatal("expected error for duplicate spawn markers")
	}
}

func TestParseUnknownCharacterFallsBackToRedWall(t *testing.T) {
	m, err := Parse("x#7")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for x := 0; x < 3; x++ {
		tile := m.Grid.TileAt(geom.Point{X: float64(x) + 0.5, Y: 0.5}, 0)
		if tile != grid.Wall(grid.Red) {
			t.Errorf("tile %d = %v, want red wall fallback", x, tile)
		}
	}
}

func TestParseJaggedRows(t *testing.T) {
	m, err := Parse("R\nRRRR\nRR")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// Beyond the short first row the grid is empty.
	if m.Grid.TileAt(geom.Point{X: 2.5, Y: 0.5}, 0).IsWall() {
		t.Error("tile beyond jagged row end should be empty")
	}
	if !m.Grid.TileAt(geom.Point{X: 2.5, Y: 1.5}, 0).IsWall() {
		t.Error("tile inside long row should be a wall")
	}
	// MaxDistance uses the widest row: 3 rows + 4 columns.
	if m.Grid.MaxDistance() != 7 {
		t.Errorf("MaxDistance = %f, want 7", m.Grid.MaxDistance())
	}
}

func TestParseCRLF(t *testing.T) {
	m, err := Parse("RR\r\nR@")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Spawn != (geom.Point{X: 1.5, Y: 1.5}) {
		t.Errorf("Spawn = %v, want (1.5, 1.5)", m.Spawn)
	}
}

func TestParseEmptyRejected(t *testing.T) {
	for _, text := range []string{"", "\n\n"} {
		if _, err := Parse(text); err == nil {
			t.Errorf("Parse(%q) should fail", text)
		}
	}
}

func TestDefaultMapParses(t *testing.T) {
	m, err := Parse(DefaultMap)
	if err != nil {
		t.Fatalf("DefaultMap does not parse: %v", err)
	}
	if m.Grid.Rows() != 11 {
		t.Errorf("DefaultMap rows = %d, want 11", m.Grid.Rows())
	}
	// Spawn must be on an empty tile whatever direction you look at it.
	for _, angle := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if m.Grid.TileAt(m.Spawn, angle).IsWall() {
			t.Fatalf("DefaultMap spawn %v is inside a wall", m.Spawn)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.map")
	if err := os.WriteFile(path, []byte("RRR\nR@R\nRRR"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Grid.Rows() != 3 {
		t.Errorf("Rows = %d, want 3", m.Grid.Rows())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.map")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
