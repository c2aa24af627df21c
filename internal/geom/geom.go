// Package geom provides the small set of 2D math primitives shared by the
// scale, kinetics and animation packages.
package geom

import "math"

// Vector2D represents a point or vector in screen space. It is used for
// positions, scroll offsets and velocities.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + other.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns v scaled by the given factor.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{X: v.X * scalar, Y: v.Y * scalar}
}

// Mag returns the Euclidean length of the vector.
func (v Vector2D) Mag() float64 {
	// math.Hypot is stable for very large or small components.
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and other.
func (v Vector2D) Dist(other Vector2D) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// Limit caps the magnitude of v at max, preserving direction.
func (v Vector2D) Limit(max float64) Vector2D {
	magSq := v.X*v.X + v.Y*v.Y
	if magSq > max*max && magSq > 0 {
		return v.Mul(max / math.Sqrt(magSq))
	}
	return v
}

// Clamp forces value into [min, max]. A max below min collapses the range to
// min, which is the degenerate case of content smaller than the viewport.
func Clamp(value, min, max int) int {
	if max < min {
		max = min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampF is Clamp for float64 values.
func ClampF(value, min, max float64) float64 {
	if max < min {
		max = min
	}
	return math.Max(min, math.Min(max, value))
}

// Lerp linearly interpolates from start to end by t in [0, 1].
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}
