package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// dotState selects which cached image a Dot is drawn with
type dotState int

const (
	dotIdle dotState = iota
	dotPending
	dotHover
)

var dotColors = map[dotState]color.RGBA{
	dotIdle:    {R: 0xd8, G: 0xd8, B: 0xd8, A: 0xff},
	dotPending: {R: 0xff, G: 0x24, B: 0x24, A: 0xff},
	dotHover:   {R: 0x2c, G: 0x8b, B: 0xff, A: 0xff},
}

// Dot is a clickable grid vertex on the Board; a board of n boxes per
// side has (n+1) x (n+1) of them. Position is fixed by Board.resize
// and only the selected flag changes afterwards.
type Dot struct {
	board    *Board
	x, y     int         // grid coordinates, 0..board.size
	pos      image.Point // center, in screen pixels
	selected bool
}

func NewDot(board *Board, x, y int) *Dot {
	d := &Dot{board: board, x: x, y: y}
	// pos not set until Board.resize
	return d
}

func (d *Dot) setPos(x, y int) {
	d.pos = image.Point{X: x, Y: y}
}

func (d *Dot) state(hovered bool) dotState {
	switch {
	case d.selected:
		return dotPending
	case hovered:
		return dotHover
	default:
		return dotIdle
	}
}

func (d *Dot) draw(screen *ebiten.Image, state dotState, pulse float64) {
	img := d.board.dotImg(state)
	if img == nil {
		return
	}

	scale := 1.0
	if state == dotHover {
		scale = pulse
	}
	half := float64(img.Bounds().Dx()) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(d.pos.X), float64(d.pos.Y))
	screen.DrawImage(img, op)

	if DebugMode {
		str := fmt.Sprintf("%d,%d", d.x, d.y)
		ebitenutil.DebugPrintAt(screen, str, d.pos.X, d.pos.Y)
	}
}

// dotImg returns the cached image for a dot state, rasterizing it on
// first use after a resize. The radial gradient fades the rim out to
// transparent so the dot has a soft antialiased edge.
func (b *Board) dotImg(state dotState) *ebiten.Image {
	img, ok := b.dotImgs[state]
	if !ok {
		img = b.makeDotImg(dotColors[state])
		if img == nil {
			return nil
		}
		b.dotImgs[state] = img
	}
	return img
}

func (b *Board) makeDotImg(fill color.RGBA) *ebiten.Image {
	isz := int(math.Ceil(b.dotRadius)) * 2
	if isz == 0 {
		return nil
	}
	c := float64(isz) / 2
	dc := gg.NewContext(isz, isz)

	grad := gg.NewRadialGradient(c, c, 0, c, c, c)
	grad.AddColorStop(0, fill)
	grad.AddColorStop(0.7, fill)
	grad.AddColorStop(1, color.RGBA{R: fill.R, G: fill.G, B: fill.B, A: 0})
	dc.SetFillStyle(grad)
	dc.DrawCircle(c, c, c)
	dc.Fill()

	return ebiten.NewImageFromImage(dc.Image())
}
