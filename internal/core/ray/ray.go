// Package ray implements grid-boundary ray growth. A Ray is an immutable
// segment from a viewer position toward a fixed angle; each Grow step snaps
// the end point to the next horizontal or vertical grid line along the
// angle, whichever is closer. Walking tile boundaries instead of sampling
// fixed-size steps keeps the scan exact and O(tiles crossed).
package ray

import (
	"math"

	"chosenoffset.com/corridor9/internal/core/geom"
)

// Ray is a line segment anchored at Start, pointing toward Angle, with its
// End on the most recently crossed grid boundary. The zero-length ray
// returned by New has End == Start.
type Ray struct {
	Start geom.Point
	End   geom.Point
	Angle float64
}

// New returns a zero-length ray anchored at start.
func New(start geom.Point, angle float64) Ray {
	return Ray{Start: start, End: start, Angle: angle}
}

// Length returns the Euclidean distance from Start to End.
func (r Ray) Length() float64 {
	return r.Start.DistanceTo(r.End)
}

// Grow returns a new ray advanced to the nearest of the next vertical and
// next horizontal grid line. When the angle is axis-aligned one candidate
// degenerates (its boundary is never reached); the surviving candidate wins.
// On an exact diagonal both candidates land on the same corner and the
// X-line candidate is returned, keeping the choice deterministic.
func (r Ray) Grow() Ray {
	x, okX := r.growToNextXLine()
	y, okY := r.growToNextYLine()
	switch {
	case !okY:
		return x
	case !okX:
		return y
	case x.Length() <= y.Length():
		return x
	default:
		return y
	}
}

// growToNextXLine advances End to the next integer x grid line in the ray's
// x direction. Reports false when the ray never crosses one (angle pointing
// straight along the Y axis, where tan overflows).
func (r Ray) growToNextXLine() (Ray, bool) {
	dx := geom.DistanceToGridLine(r.End.X, geom.DirectionOn(r.Angle, geom.AxisX))
	dy := math.Tan(r.Angle) * dx
	if math.IsInf(dy, 0) || math.IsNaN(dy) {
		return r, false
	}
	return Ray{Start: r.Start, End: r.End.Translate(dx, dy), Angle: r.Angle}, true
}

// growToNextYLine advances End to the next integer y grid line in the ray's
// y direction. Reports false when the ray never crosses one (tan(angle) is
// zero, so the division degenerates).
func (r Ray) growToNextYLine() (Ray, bool) {
	dy := geom.DistanceToGridLine(r.End.Y, geom.DirectionOn(r.Angle, geom.AxisY))
	tan := math.Tan(r.Angle)
	if tan == 0 {
		return r, false
	}
	dx := dy / tan
	if math.IsInf(dx, 0) || math.IsNaN(dx) {
		return r, false
	}
	return Ray{Start: r.Start, End: r.End.Translate(dx, dy), Angle: r.Angle}, true
}
