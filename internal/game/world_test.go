package game

import (
	"math"
	"testing"

	"chosenoffset.com/corridor9/internal/core/geom"
	"chosenoffset.com/corridor9/internal/world/grid"
	"chosenoffset.com/corridor9/internal/world/maploader"
)

const epsilon = 1e-9

func testWorld(t *testing.T) *World {
	t.Helper()
	m, err := maploader.Parse("RRRRR\nR   R\nR @ R\nR   R\nRRRRR")
	if err != nil {
		t.Fatal(err)
	}
	return NewWorld(m.Grid, m.Spawn, 0, 0.5, math.Pi/2)
}

func TestRotateIsUnconditional(t *testing.T) {
	w := testWorld(t)
	w.Rotate(3 * math.Pi)
	_, heading := w.PlayerState()
	// No normalization: 3pi stays 3pi.
	if heading != 3*math.Pi {
		t.Errorf("heading = %f, want 3pi", heading)
	}
	w.Rotate(-math.Pi)
	if _, h := w.PlayerState(); math.Abs(h-2*math.Pi) > epsilon {
		t.Errorf("heading = %f, want 2pi", h)
	}
}

func TestMoveIntoEmptyTile(t *testing.T) {
	w := testWorld(t)
	if !w.Move(0.5) {
		t.Fatal("move into empty tile was rejected")
	}
	pos, _ := w.PlayerState()
	if math.Abs(pos.X-3.0) > epsilon || math.Abs(pos.Y-2.5) > epsilon {
		t.Errorf("position = %v, want (3, 2.5)", pos)
	}
}

func TestMoveIntoWallRejected(t *testing.T) {
	w := testWorld(t)
	// Two forward steps from (2.5, 2.5) heading east: the second lands
	// exactly on x=4, which the entering-side rule resolves to the wall
	// tile, so it is rejected whole.
	if !w.Move(0.75) {
		t.Fatal("first move should succeed")
	}
	if w.Move(0.75) {
		t.Error("second move should be rejected by the wall")
	}
	pos, _ := w.PlayerState()
	if math.Abs(pos.X-3.25) > epsilon {
		t.Errorf("position = %v, want unchanged (3.25, 2.5)", pos)
	}
	// The world stays usable: backing away still works.
	if !w.Move(-0.5) {
		t.Error("backward move should succeed")
	}
}

func TestMoveBackward(t *testing.T) {
	w := testWorld(t)
	if !w.Move(-0.4) {
		t.Fatal("backward move rejected")
	}
	pos, _ := w.PlayerState()
	if math.Abs(pos.X-2.1) > epsilon {
		t.Errorf("position = %v, want x=2.1", pos)
	}
}

func TestTickAppliesIntents(t *testing.T) {
	w := testWorld(t)
	w.Tick(Input{RotateRight: true})
	if _, h := w.PlayerState(); math.Abs(h-math.Pi/2) > epsilon {
		t.Errorf("heading = %f, want pi/2", h)
	}
	// Now facing +y; forward moves down a row.
	w.Tick(Input{MoveForward: true})
	pos, _ := w.PlayerState()
	if math.Abs(pos.Y-3.0) > epsilon {
		t.Errorf("position = %v, want y=3", pos)
	}
	// Opposing intents cancel out.
	w.Tick(Input{RotateLeft: true, RotateRight: true})
	if _, h := w.PlayerState(); math.Abs(h-math.Pi/2) > epsilon {
		t.Errorf("heading = %f, want pi/2 after cancelling rotations", h)
	}
}

func TestMoveUsesHeadingForTieBreak(t *testing.T) {
	// A candidate position exactly on a grid line resolves to the tile
	// the player is travelling into.
	rows := [][]grid.Tile{
		{grid.Empty(), grid.Empty(), grid.Wall(grid.Red)},
	}
	w := NewWorld(grid.New(rows), geom.Point{X: 1.5, Y: 0.5}, 0, 0.5, 0.1)
	// Forward lands exactly on x=2, entering the wall tile: rejected.
	if w.Move(0.5) {
		t.Error("move onto the wall boundary should be rejected")
	}
	// After turning around the heading resolves x=2 with the Decreasing
	// rule to the empty tile at x=1, so the same candidate coordinate is
	// now allowed.
	w.Rotate(math.Pi)
	if !w.Move(-0.5) {
		t.Error("move resolved against the empty side should succeed")
	}
}
