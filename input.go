package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input records one mouse tap per frame for the widgets to consume.
// The release position is latched when the left button comes up and
// is valid only until the next Update.
type Input struct {
	tapped bool
	pos    image.Point
}

func NewInput() *Input {
	return &Input{}
}

// Update must be called once per frame by the owning scene.
func (i *Input) Update() {
	i.tapped = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if i.tapped {
		x, y := ebiten.CursorPosition()
		i.pos = image.Point{X: x, Y: y}
	}
}

// TappedAt returns the position of this frame's tap, if there was one.
func (i *Input) TappedAt() (image.Point, bool) {
	return i.pos, i.tapped
}
