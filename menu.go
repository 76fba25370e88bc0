package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Menu represents a game state.
type Menu struct {
	widgets []Widget
	input   *Input
}

var MenuBackground = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}

var boardNames = map[int]string{
	1: "Tiny",
	2: "Small",
	3: "Classic",
	4: "Large",
	5: "Huge",
}

// NewMenu creates and initializes a Menu/GameState object
func NewMenu() *Menu {
	i := NewInput()
	s := &Menu{input: i}

	s.widgets = []Widget{
		NewLabel("Boxes", theFonts.large),
	}
	for n := MinBoardSize; n <= MaxBoardSize; n++ {
		size := n // capture for the closure
		text := fmt.Sprintf("%s (%d x %d)", boardNames[n], n, n)
		s.widgets = append(s.widgets, NewTextButton(text, 240, 50, theFonts.normal, func() {
			theSM.Push(NewBoard(size))
		}, i))
	}

	return s
}

// Layout implements ebiten.Game's Layout
func (s *Menu) Layout(outsideWidth, outsideHeight int) (int, int) {

	xCenter := outsideWidth / 2
	yPlaces := []int{} // golang gotcha: can't use len(s.widgets) to make an array
	slots := len(s.widgets) + 1
	for i := 0; i < slots; i++ {
		yPlaces = append(yPlaces, (outsideHeight/slots)*i)
	}

	for i, w := range s.widgets {
		w.SetPosition(xCenter, yPlaces[i+1])
	}

	return outsideWidth, outsideHeight
}

// Update updates the current game state.
func (s *Menu) Update() error {

	s.input.Update()
	for _, w := range s.widgets {
		w.Update()
	}

	return nil
}

// Draw draws the current GameState to the given screen
func (s *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(MenuBackground)

	for _, d := range s.widgets {
		d.Draw(screen)
	}
}
