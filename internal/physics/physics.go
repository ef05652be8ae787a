// Package physics provides the proximity and motion helpers of the simulation.
//
// Collision in the arcade game is an axis-aligned box test rather than a
// radius test: two points touch when they are closer than a threshold on
// both axes independently.
package physics

import "math"

// Near reports whether (x1,y1) and (x2,y2) are strictly within rangeX on the
// x axis and strictly within rangeY on the y axis.
func Near(x1, y1, x2, y2, rangeX, rangeY float64) bool {
	return math.Abs(x1-x2) < rangeX && math.Abs(y1-y2) < rangeY
}

// Within reports whether v lies strictly between lo and hi.
func Within(v, lo, hi float64) bool {
	return v > lo && v < hi
}

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ease moves current toward target by factor of the remaining distance.
func Ease(current, target, factor float64) float64 {
	return current + (target-current)*factor
}
