package util

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
	assert.Equal(t, 10.0, Lerp(0, 10, 2), "t is clamped")
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(0, 90, 0))
	assert.Equal(t, 90.0, Smoothstep(0, 90, 1))
	assert.Equal(t, 45.0, Smoothstep(0, 90, 0.5))
	// eases: below the line in the first half
	assert.Less(t, Smoothstep(0, 90, 0.25), 0.25*90)
}

func TestMapValue(t *testing.T) {
	assert.Equal(t, 1.0, MapValue(-1, -1, 1, 1.0, 1.2))
	assert.InDelta(t, 1.1, MapValue(0, -1, 1, 1.0, 1.2), 1e-9)
	assert.Equal(t, 1.2, MapValue(1, -1, 1, 1.0, 1.2))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 2.0, Clamp(1.0, 2.0, 3.0))
	assert.Equal(t, 2.5, Clamp(2.5, 2.0, 3.0))
	assert.Equal(t, 3.0, Clamp(9.9, 2.0, 3.0))
	assert.Equal(t, 1, ClampInt(-5, 1, 5))
	assert.Equal(t, 5, ClampInt(50, 1, 5))
	assert.Equal(t, 3, ClampInt(3, 1, 5))
}

func TestInRect(t *testing.T) {
	rect := func() (int, int, int, int) { return 0, 0, 100, 50 }
	assert.True(t, InRect(50, 25, rect))
	assert.False(t, InRect(0, 0, rect), "edges are exclusive")
	assert.False(t, InRect(101, 25, rect))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(image.Point{0, 0}, image.Point{3, 4}))
	assert.Equal(t, 0.0, Distance(image.Point{7, 7}, image.Point{7, 7}))
}

func TestMinMaxAbs(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 2, Max(1, 2))
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
}
