// Package utils contains small numeric helpers shared by the spatialmath and cli packages.
package utils

import (
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Float64AlmostEqual reports whether a and b are within epsilon of each other.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Clamp restricts value to [lo, hi]. NaN passes through unchanged.
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// SnapToZero returns 0 when |x| < epsilon, and x otherwise.
// The comparison is done in float64.
func SnapToZero(x float32, epsilon float64) float32 {
	if math.Abs(float64(x)) < epsilon {
		return 0
	}
	return x
}
