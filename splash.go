package main

import (
	"image"
	"image/color"
	"os"
	"runtime"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"oddstream.games/boxes/util"
)

var SplashBackground = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}

var _ GameScene = (*Splash)(nil)

// Splash represents a game scene.
type Splash struct {
	boxImage *ebiten.Image
	boxPos   image.Point
	ticks    int
	skew     float64
}

// NewSplash creates and initializes a Splash/GameScene object
func NewSplash() *Splash {
	s := &Splash{}

	// a single completed box with a dot at each corner,
	// drawn once here rather than loaded from an asset
	const sz = 280.0
	const r = sz / 14.0
	dc := gg.NewContext(int(sz), int(sz))

	dc.SetColor(color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff})
	dc.DrawRoundedRectangle(r, r, sz-r*2, sz-r*2, r)
	dc.Fill()

	dc.SetColor(color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff})
	dc.SetLineWidth(r / 2)
	dc.DrawRectangle(r*2, r*2, sz-r*4, sz-r*4)
	dc.Stroke()

	dc.SetColor(dotColors[dotIdle])
	for _, pt := range []struct{ x, y float64 }{
		{r * 2, r * 2}, {sz - r*2, r * 2}, {r * 2, sz - r*2},
	} {
		dc.DrawCircle(pt.x, pt.y, r)
		dc.Fill()
	}
	dc.SetColor(dotColors[dotPending])
	dc.DrawCircle(sz-r*2, sz-r*2, r)
	dc.Fill()

	s.boxImage = ebiten.NewImageFromImage(dc.Image())
	return s
}

// Layout implements ebiten.Game's Layout
func (s *Splash) Layout(outsideWidth, outsideHeight int) (int, int) {
	cx := s.boxImage.Bounds().Dx()
	cy := s.boxImage.Bounds().Dy()
	s.boxPos = image.Point{X: outsideWidth/2 - cx/2, Y: outsideHeight/2 - cy/2}
	return outsideWidth, outsideHeight
}

// Update updates the current game scene.
func (s *Splash) Update() error {

	if inpututil.IsKeyJustReleased(ebiten.KeyBackspace) {
		if runtime.GOARCH != "wasm" {
			os.Exit(0)
		}
	}

	s.ticks++
	t := util.Clamp(float64(s.ticks)/60.0, 0.0, 1.0)
	s.skew = util.Smoothstep(0.0, 90.0, t)
	if t >= 1.0 || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if BoardSize > 0 {
			theSM.Switch(NewBoard(BoardSize))
		} else {
			theSM.Switch(NewMenu())
		}
	}

	return nil
}

// Draw draws the current GameScene to the given screen
func (s *Splash) Draw(screen *ebiten.Image) {
	screen.Fill(SplashBackground)

	skewRadians := gg.Radians(s.skew)

	op := &ebiten.DrawImageOptions{}
	sx := s.boxImage.Bounds().Dx() / 2
	sy := s.boxImage.Bounds().Dy() / 2
	op.GeoM.Translate(float64(-sx), float64(-sy))
	op.GeoM.Scale(0.5, 0.5)
	op.GeoM.Skew(skewRadians, skewRadians)
	op.GeoM.Translate(float64(sx), float64(sy))
	op.GeoM.Translate(float64(s.boxPos.X), float64(s.boxPos.Y))
	screen.DrawImage(s.boxImage, op)
}
