package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextButtonHitbox(t *testing.T) {
	fonts := NewBoxFonts()
	btn := NewTextButton("Classic (3 x 3)", 240, 50, fonts.normal, func() {}, NewInput())
	btn.SetPosition(400, 300)

	assert.Equal(t, image.Point{X: 400 - 120, Y: 300 - 25}, btn.pos)
	assert.Equal(t, 240, btn.hitbox.Dx())
	assert.Equal(t, 50, btn.hitbox.Dy())
}

func TestTextButtonTap(t *testing.T) {
	fonts := NewBoxFonts()
	input := NewInput()

	var fired int
	btn := NewTextButton("Tiny (1 x 1)", 240, 50, fonts.normal, func() { fired++ }, input)
	btn.SetPosition(400, 300)

	// tap inside the hitbox
	input.tapped = true
	input.pos = image.Point{X: 400, Y: 300}
	btn.Update()
	require.Equal(t, 1, fired)

	// tap outside the hitbox
	input.pos = image.Point{X: 10, Y: 10}
	btn.Update()
	assert.Equal(t, 1, fired)

	// no tap this frame
	input.tapped = false
	input.pos = image.Point{X: 400, Y: 300}
	btn.Update()
	assert.Equal(t, 1, fired)
}

func TestMenuHasOneButtonPerBoardSize(t *testing.T) {
	theFonts = NewBoxFonts()
	m := NewMenu()
	var buttons int
	for _, w := range m.widgets {
		if _, ok := w.(*TextButton); ok {
			buttons++
		}
	}
	assert.Equal(t, MaxBoardSize-MinBoardSize+1, buttons)
}
