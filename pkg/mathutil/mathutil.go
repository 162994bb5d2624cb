// Package mathutil provides the scalar helpers parameter types are built on.
package mathutil

import "math"

// Clamp ensures a value stays within [min, max].
func Clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// Clamp01 clamps a value to [0, 1].
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Mix performs linear interpolation between a and b.
func Mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Fit maps x from the interval [a, b] onto [c, d].
// A degenerate source interval maps everything onto c.
func Fit(x, a, b, c, d float64) float64 {
	if a == b {
		return c
	}
	return c + (d-c)*((x-a)/(b-a))
}

// Fit01 maps a normalized value onto [a, b].
func Fit01(x, a, b float64) float64 {
	return Mix(a, b, x)
}

// RoundTo rounds x to the nearest multiple of step. Halves round up.
func RoundTo(x, step float64) float64 {
	if step <= 0 {
		return x
	}
	return math.Floor(x/step+0.5) * step
}

// Smoothstep01 is the Hermite smoothstep on a normalized input.
func Smoothstep01(t float64) float64 {
	return t * t * (3 - 2*t)
}

// EaseInOut returns a symmetric polynomial ease of degree k.
func EaseInOut(k, t float64) float64 {
	if t < 0.5 {
		return 0.5 * math.Pow(2*t, k)
	}
	return 1 - 0.5*math.Pow(2-2*t, k)
}

// EaseInOut5 is the quintic ease used by exponential ramps.
func EaseInOut5(t float64) float64 {
	return EaseInOut(5, t)
}
