// Package geom provides the 2D primitives the ray caster is built on:
// points in grid-unit world coordinates, the two grid axes, and travel
// direction along an axis derived from a viewing angle.
package geom

import "math"

// Point represents a 2D point in world coordinates, where 1.0 equals one tile.
type Point struct {
	X, Y float64
}

// Translate returns a new point shifted by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Component returns the coordinate of the point on the given axis.
func (p Point) Component(axis Axis) float64 {
	if axis == AxisX {
		return p.X
	}
	return p.Y
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point) DistanceTo(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Axis identifies one of the two grid axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Direction is the travel direction along an axis. It is always derived from
// an angle, never stored.
type Direction int

const (
	Increasing Direction = iota
	Decreasing
)

// DirectionOn returns the travel direction of a ray with the given angle
// along the given axis: Increasing when the matching trig component
// (cos for X, sin for Y) is positive, Decreasing otherwise.
func DirectionOn(angle float64, axis Axis) Direction {
	if axis == AxisX {
		if math.Cos(angle) > 0 {
			return Increasing
		}
		return Decreasing
	}
	if math.Sin(angle) > 0 {
		return Increasing
	}
	return Decreasing
}

// DistanceToGridLine returns the signed distance from coordinate v to the
// next integer grid line in the given direction. The magnitude is in (0, 1]:
// a coordinate sitting exactly on a grid line advances a full tile.
func DistanceToGridLine(v float64, dir Direction) float64 {
	if dir == Increasing {
		return math.Floor(v) + 1 - v
	}
	return math.Ceil(v) - 1 - v
}
