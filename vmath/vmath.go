package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a position in screen pixels, X right and Y down
type Point = mgl64.Vec2

// Pt builds a Point from coordinates
func Pt(x, y float64) Point {
	return Point{x, y}
}

// --- Scalar ---

// Clamp bounds v to [lo, hi]
// When lo > hi the result is hi, several patterns rely on this for oversized margins
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ClampInt bounds an int to [lo, hi], hi wins on inverted bounds
func ClampInt(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// Span returns the travel range along one axis for an object of the given size
// Never negative, zero on degenerate screens
func Span(screen, size float64) float64 {
	return math.Max(0, screen-size)
}

// RoundMs rounds a millisecond value the way a UI timer would (half up)
func RoundMs(ms float64) float64 {
	return math.Floor(ms + 0.5)
}

// --- Points ---

// Distance returns the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return b.Sub(a).Len()
}

// ClampPoint bounds both coordinates independently
func ClampPoint(p Point, minX, minY, maxX, maxY float64) Point {
	return Point{Clamp(p[0], minX, maxX), Clamp(p[1], minY, maxY)}
}

// Heading returns the angle of travel from a to b in radians, 0 = right, +π/2 = down
func Heading(a, b Point) float64 {
	d := b.Sub(a)
	return math.Atan2(d[1], d[0])
}

// Polar returns the point at angle a and radius r around center c
func Polar(c Point, a, r float64) Point {
	return Point{c[0] + math.Cos(a)*r, c[1] + math.Sin(a)*r}
}

// Finite reports whether both coordinates are finite numbers
func Finite(p Point) bool {
	return !math.IsNaN(p[0]) && !math.IsNaN(p[1]) && !math.IsInf(p[0], 0) && !math.IsInf(p[1], 0)
}
