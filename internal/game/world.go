// Package game owns the mutable world state: the immutable tile grid plus
// the player, mutated once per tick from input intents and read as a
// consistent snapshot by whoever renders the frame.
package game

import (
	"math"

	"chosenoffset.com/corridor9/internal/core/geom"
	"chosenoffset.com/corridor9/internal/world/grid"
)

// Player is the viewer: a continuous position and an unnormalized heading
// in radians. Mutated only through World methods.
type Player struct {
	position geom.Point
	heading  float64
}

// World binds a grid to its player and the per-tick movement magnitudes.
type World struct {
	grid       *grid.Grid
	player     Player
	moveStep   float64
	rotateStep float64
}

// NewWorld places a player at spawn with the given heading.
func NewWorld(g *grid.Grid, spawn geom.Point, heading, moveStep, rotateStep float64) *World {
	return &World{
		grid:       g,
		player:     Player{position: spawn, heading: heading},
		moveStep:   moveStep,
		rotateStep: rotateStep,
	}
}

// Grid returns the world's tile grid.
func (w *World) Grid() *grid.Grid {
	return w.grid
}

// PlayerState returns the player's position and heading as one snapshot.
func (w *World) PlayerState() (geom.Point, float64) {
	return w.player.position, w.player.heading
}

// Rotate turns the player by delta radians. Rotation never collides and the
// heading is deliberately left unnormalized.
func (w *World) Rotate(delta float64) {
	w.player.heading += delta
}

// Move advances the player by distance along the heading (negative moves
// backward). A move whose destination tile is a wall is rejected whole; no
// sliding along the wall is attempted. Reports whether the move applied.
func (w *World) Move(distance float64) bool {
	h := w.player.heading
	candidate := w.player.position.Translate(distance*math.Cos(h), distance*math.Sin(h))
	if w.grid.TileAt(candidate, h).IsWall() {
		return false
	}
	w.player.position = candidate
	return true
}

// Input is the set of intents collected for one tick.
type Input struct {
	RotateLeft   bool
	RotateRight  bool
	MoveForward  bool
	MoveBackward bool
}

// Tick applies one tick's intents with the world's fixed step magnitudes.
func (w *World) Tick(in Input) {
	if in.RotateLeft {
		w.Rotate(-w.rotateStep)
	}
	if in.RotateRight {
		w.Rotate(w.rotateStep)
	}
	if in.MoveForward {
		w.Move(w.moveStep)
	}
	if in.MoveBackward {
		w.Move(-w.moveStep)
	}
}
