package main

import "github.com/hajimehoshi/ebiten/v2"

type BoxesGame struct {
}

var theSM *SceneManager = &SceneManager{}

// NewGame generates a new Game object.
func NewGame() (*BoxesGame, error) {
	g := &BoxesGame{}
	theSM.Switch(NewSplash())
	return g, nil
}

// Layout implements ebiten.Game's Layout.
func (g *BoxesGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	WindowWidth = outsideWidth
	WindowHeight = outsideHeight
	scene := theSM.Get()
	return scene.Layout(outsideWidth, outsideHeight)
}

// Update updates the current game scene.
func (g *BoxesGame) Update() error {
	scene := theSM.Get()
	if err := scene.Update(); err != nil {
		return err
	}
	return nil
}

// Draw draws the current game to the given screen.
func (g *BoxesGame) Draw(screen *ebiten.Image) {
	scene := theSM.Get()
	scene.Draw(screen)
}
