package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"oddstream.games/boxes/sound"
	"oddstream.games/boxes/util"
)

const (
	MinBoardSize = 1
	MaxBoardSize = 5

	noDot = -1

	// baseDotRadius is in logical pixels; resize scales it by the
	// device scale factor so dots look the same size on any display
	baseDotRadius = 8.0

	// a click lands on a dot when it is within twice the dot radius
	collisionScale = 2.0
)

var ColorBackground = color.RGBA{R: 0x26, G: 0x2b, B: 0x33, A: 0xff}

var _ GameScene = (*Board)(nil)

// Board is the playing scene: a regular grid of Dots with at most one
// of them pending as the start of a line. Line creation itself, box
// completion and turn switching are not implemented yet.
type Board struct {
	oldWindowWidth, oldWindowHeight int
	size                            int // boxes per side
	dots                            []*Dot
	pending                         int // index into dots, or noDot
	hover                           int // index into dots, or noDot

	scale                 float64 // device scale factor
	dotRadius             float64 // screen pixels
	spacing               int
	leftMargin, topMargin int
	boardRectangle        image.Rectangle

	ticks   int
	dotImgs map[dotState]*ebiten.Image
}

func NewBoard(size int) *Board {
	size = util.ClampInt(size, MinBoardSize, MaxBoardSize)
	b := &Board{
		size:    size,
		pending: noDot,
		hover:   noDot,
		dotImgs: make(map[dotState]*ebiten.Image),
	}
	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			b.dots = append(b.dots, NewDot(b, x, y))
		}
	}
	// dot positions not set until Layout/resize
	return b
}

// Layout implements ebiten.Game's Layout
func (b *Board) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.DeviceScaleFactor()
	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	b.resize(w, h, s)
	return w, h
}

// resize recomputes the grid geometry for a new screen size. Split
// out from Layout so it can run without a window.
func (b *Board) resize(w, h int, scale float64) {
	if w == b.oldWindowWidth && h == b.oldWindowHeight {
		return
	}

	b.scale = scale
	b.dotRadius = baseDotRadius * scale

	// the grid spans size intervals; keep at least one interval of
	// border on every side and center the rest
	b.spacing = util.Min(w, h) / (b.size + 2)
	span := b.size * b.spacing
	b.leftMargin = (w - span) / 2
	b.topMargin = (h - span) / 2
	b.boardRectangle = image.Rectangle{
		Min: image.Point{X: b.leftMargin, Y: b.topMargin},
		Max: image.Point{X: b.leftMargin + span, Y: b.topMargin + span},
	}

	for _, d := range b.dots {
		d.setPos(b.leftMargin+d.x*b.spacing, b.topMargin+d.y*b.spacing)
	}

	clear(b.dotImgs) // sizes changed, rasterize afresh

	b.oldWindowWidth = w
	b.oldWindowHeight = h
}

// findDotAt returns the index of the nearest dot within the collision
// radius of x,y, or noDot. Brute force over every dot is fine here,
// the board tops out at 36 of them.
func (b *Board) findDotAt(x, y int) int {
	r := b.dotRadius * collisionScale
	best := noDot
	bestD2 := int(r*r) + 1
	for i, d := range b.dots {
		dx := x - d.pos.X
		dy := y - d.pos.Y
		if d2 := dx*dx + dy*dy; d2 < bestD2 {
			best = i
			bestD2 = d2
		}
	}
	return best
}

// leftClick advances the selection state machine for a click at x,y
func (b *Board) leftClick(x, y int) {
	i := b.findDotAt(x, y)
	if i == noDot {
		return
	}
	switch {
	case b.pending == noDot:
		b.pending = i
		b.dots[i].selected = true
		sound.Play("Select")
	case b.pending == i:
		// clicking the pending dot again cancels the selection
		b.pending = noDot
		b.dots[i].selected = false
		sound.Play("Cancel")
	default:
		// TODO create a line when this dot is adjacent to the pending
		// one, then detect completed boxes and switch the turn
	}
}

// Update updates the current game scene.
func (b *Board) Update() error {

	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		if !theSM.Pop() {
			theSM.Switch(NewMenu())
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		theSM.Switch(NewBoard(b.size))
		return nil
	}

	x, y := ebiten.CursorPosition()
	b.hover = b.findDotAt(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.leftClick(x, y)
	}

	b.ticks++

	return nil
}

// Draw draws the current GameScene to the given screen
func (b *Board) Draw(screen *ebiten.Image) {

	screen.Fill(ColorBackground)

	pulse := util.MapValue(math.Sin(float64(b.ticks)/8.0), -1, 1, 1.0, 1.2)

	for i, d := range b.dots {
		d.draw(screen, d.state(i == b.hover), pulse)
	}

	if DebugMode {
		r := b.boardRectangle
		ebitenutil.DrawLine(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Min.Y), color.RGBA{R: 0xff, A: 0xff})
		ebitenutil.DrawLine(screen, float64(r.Max.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y), color.RGBA{R: 0xff, A: 0xff})
		ebitenutil.DrawLine(screen, float64(r.Max.X), float64(r.Max.Y), float64(r.Min.X), float64(r.Max.Y), color.RGBA{R: 0xff, A: 0xff})
		ebitenutil.DrawLine(screen, float64(r.Min.X), float64(r.Max.Y), float64(r.Min.X), float64(r.Min.Y), color.RGBA{R: 0xff, A: 0xff})
		str := fmt.Sprintf("pending %d hover %d", b.pending, b.hover)
		ebitenutil.DebugPrintAt(screen, str, 0, 0)
	}
}
