package vmath

import (
	"math"
)

// Normalize returns unit vector, zero-safe (zero stays zero)
func Normalize(x, y float64) (nx, ny float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		l = 1
	}
	return x / l, y / l
}

// Perpendicular returns vector rotated 90° counter-clockwise in screen space
func Perpendicular(x, y float64) (px, py float64) {
	return -y, x
}

// ReflectAxisX returns velocity reflected off a vertical wall (left/right edge)
func ReflectAxisX(velX, velY float64) (float64, float64) {
	return -velX, velY
}

// ReflectAxisY returns velocity reflected off a horizontal wall (top/bottom edge)
func ReflectAxisY(velX, velY float64) (float64, float64) {
	return velX, -velY
}

// TimeToWall returns time until a point moving at v along one axis reaches 0 or max
// +Inf when the axis velocity is zero
func TimeToWall(pos, vel, max float64) float64 {
	switch {
	case vel > 0:
		return (max - pos) / vel
	case vel < 0:
		return (0 - pos) / vel
	default:
		return math.Inf(1)
	}
}
