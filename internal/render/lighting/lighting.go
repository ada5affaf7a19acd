// Package lighting computes wall illumination. Two independent intensities
// are multiplied and applied to the wall's base color: a linear distance
// falloff with a floor, and a fixed per-surface factor simulating a single
// global light direction.
package lighting

import (
	"math"

	"chosenoffset.com/corridor9/internal/core/geom"
	"chosenoffset.com/corridor9/internal/world/grid"
)

// Directional intensity table, keyed by the facing axis of the struck wall
// surface and the viewing direction along it. The four values are tuned
// constants; changing them changes the apparent light direction.
const (
	facingXIncreasing = 1.0
	facingXDecreasing = 0.6
	facingYIncreasing = 0.4
	facingYDecreasing = 0.8
)

// DistanceIntensity returns the linear falloff for a raw ray length:
// 1.0 at the viewer, minimumLight at and beyond illuminationRadius. The
// floor keeps distant walls visible instead of fading to black.
func DistanceIntensity(rayLength, illuminationRadius, minimumLight float64) float64 {
	i := 1 - rayLength/illuminationRadius
	if i < minimumLight {
		return minimumLight
	}
	if i > 1 {
		return 1
	}
	return i
}

// DirectionalIntensity returns the fixed surface factor for a wall hit.
// The facing axis is the one on which the hit point sits closest to a grid
// line (that is the boundary the ray actually struck); the viewing
// direction along that axis picks the table entry.
func DirectionalIntensity(hit geom.Point, angle float64) float64 {
	axis := facingAxis(hit)
	dir := geom.DirectionOn(angle, axis)
	switch {
	case axis == geom.AxisX && dir == geom.Increasing:
		return facingXIncreasing
	case axis == geom.AxisX && dir == geom.Decreasing:
		return facingXDecreasing
	case axis == geom.AxisY && dir == geom.Increasing:
		return facingYIncreasing
	default:
		return facingYDecreasing
	}
}

// Illuminate applies both intensities to a wall's base color.
func Illuminate(base grid.Color, hit geom.Point, angle, rayLength, illuminationRadius, minimumLight float64) grid.Color {
	return base.Scale(DistanceIntensity(rayLength, illuminationRadius, minimumLight) * DirectionalIntensity(hit, angle))
}

// facingAxis returns the axis whose grid lines the point lies closest to.
func facingAxis(p geom.Point) geom.Axis {
	if distanceToInteger(p.X) <= distanceToInteger(p.Y) {
		return geom.AxisX
	}
	return geom.AxisY
}

func distanceToInteger(v float64) float64 {
	return math.Abs(v - math.Round(v))
}
