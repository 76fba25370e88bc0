package util

import (
	"image"
	"math"
)

// InRect returns true if px,py is within Rect returned by function parameter
func InRect(x, y int, fn func() (int, int, int, int)) bool {
	x0, y0, x1, y1 := fn()
	return x > x0 && y > y0 && x < x1 && y < y1
}

// Lerp see https://en.wikipedia.org/wiki/Linear_interpolation
func Lerp(v0, v1, t float64) float64 {
	if t > 1.0 {
		t = 1.0
	}
	return (1-t)*v0 + t*v1
}

// Smoothstep see http://sol.gfxile.net/interpolation/
func Smoothstep(A, B, v float64) float64 {
	if v < 0.0 {
		v = 0.0
	}
	if v > 1.0 {
		v = 1.0
	}
	v = v * v * (3 - 2*v)
	return (B * v) + (A * (1.0 - v))
}

// Normalize is the opposite of lerp. Instead of a range and a factor, we give a range and a value to find out the factor.
func Normalize(start, finish, value float64) float64 {
	return (value - start) / (finish - start)
}

// MapValue converts a value from the scale [fromMin, fromMax] to a value from the scale [toMin, toMax].
// It’s just the normalize and lerp functions working together.
func MapValue(value, fromMin, fromMax, toMin, toMax float64) float64 {
	return Lerp(toMin, toMax, Normalize(fromMin, fromMax, value))
}

// Clamp a value between min and max values
func Clamp(value, _min, _max float64) float64 {
	return math.Min(math.Max(value, _min), _max)
}

// ClampInt a value between min and max values
func ClampInt(value, _min, _max int) int {
	return Min(Max(value, _min), _max)
}

// Abs returns the absolute value of x
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the largest of it's two int parameters
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smallest of it's two int parameters
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Distance finds the length of the hypotenuse between two points.
func Distance(p1, p2 image.Point) float64 {
	first := math.Pow(float64(p2.X-p1.X), 2)
	second := math.Pow(float64(p2.Y-p1.Y), 2)
	return math.Sqrt(first + second)
}
