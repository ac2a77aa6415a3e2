package wad

import (
	"math"

	"golang.org/x/exp/constraints"
)

// degreesToRadians
func degreesToRadians[T constraints.Integer | constraints.Float](n T) float64 {
	return float64(n) * (math.Pi / 180)
}

const halfScale = 1 << 15

// bamToRadians maps a binary angle onto [0, 2π)
func bamToRadians[T constraints.Signed](n T) float64 {
	if n < 0 {
		return (float64(n) + 2*halfScale) * math.Pi / halfScale
	}
	return float64(n) * math.Pi / halfScale
}

// scaled converts a map-unit coordinate to render space
func scaled[T constraints.Integer](n T, scale float32) float32 {
	return float32(n) * scale
}
