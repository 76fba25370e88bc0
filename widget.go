package main

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"oddstream.games/boxes/sound"
	"oddstream.games/boxes/util"
)

// Widget is anything the Menu scene can position and draw
type Widget interface {
	SetPosition(x, y int) // center of the widget
	Update()
	Draw(*ebiten.Image)
}

var (
	widgetTextColor   = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	widgetFaceColor   = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	widgetShadowColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// Label is a widget that displays a single line of static text
type Label struct {
	text string
	face font.Face
	pos  image.Point // top left
	img  *ebiten.Image
}

func NewLabel(text string, face font.Face) *Label {
	return &Label{text: text, face: face}
}

func (l *Label) SetPosition(x, y int) {
	w, h := textSize(l.text, l.face)
	l.pos = image.Point{X: x - w/2, Y: y - h/2}
}

func (l *Label) Update() {}

func (l *Label) Draw(screen *ebiten.Image) {
	if l.img == nil {
		w, h := textSize(l.text, l.face)
		dc := gg.NewContext(w, h)
		dc.SetFontFace(l.face)
		dc.SetColor(widgetTextColor)
		dc.DrawStringAnchored(l.text, float64(w)/2, float64(h)/2, 0.5, 0.35)
		dc.Stroke()
		l.img = ebiten.NewImageFromImage(dc.Image())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(l.pos.X), float64(l.pos.Y))
	screen.DrawImage(l.img, op)
}

// TextButton is a widget that runs an action when tapped
type TextButton struct {
	text          string
	width, height int
	face          font.Face
	action        func()
	input         *Input
	pos           image.Point // top left
	hitbox        image.Rectangle
	img           *ebiten.Image
}

func NewTextButton(text string, w, h int, face font.Face, action func(), input *Input) *TextButton {
	return &TextButton{text: text, width: w, height: h, face: face, action: action, input: input}
}

func (b *TextButton) SetPosition(x, y int) {
	b.pos = image.Point{X: x - b.width/2, Y: y - b.height/2}
	b.hitbox = image.Rectangle{
		Min: b.pos,
		Max: image.Point{X: b.pos.X + b.width, Y: b.pos.Y + b.height},
	}
}

func (b *TextButton) Update() {
	if pt, ok := b.input.TappedAt(); ok {
		if util.InRect(pt.X, pt.Y, func() (int, int, int, int) {
			return b.hitbox.Min.X, b.hitbox.Min.Y, b.hitbox.Max.X, b.hitbox.Max.Y
		}) {
			sound.Play("Tap")
			b.action()
		}
	}
}

func (b *TextButton) Draw(screen *ebiten.Image) {
	if b.img == nil {
		fw, fh := float64(b.width), float64(b.height)
		shadow := fh / 10.0
		dc := gg.NewContext(b.width, b.height)

		dc.SetColor(widgetShadowColor)
		dc.DrawRoundedRectangle(0, shadow, fw, fh-shadow, fh/5.0)
		dc.Fill()

		dc.SetColor(widgetFaceColor)
		dc.DrawRoundedRectangle(0, 0, fw, fh-shadow, fh/5.0)
		dc.Fill()

		dc.SetColor(widgetTextColor)
		dc.SetFontFace(b.face)
		dc.DrawStringAnchored(b.text, fw/2, (fh-shadow)/2, 0.5, 0.35)
		dc.Stroke()
		b.img = ebiten.NewImageFromImage(dc.Image())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.pos.X), float64(b.pos.Y))
	screen.DrawImage(b.img, op)
}

// textSize measures a single line of text in the given face
func textSize(text string, face font.Face) (int, int) {
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	w, h := dc.MeasureString(text)
	return int(w) + 4, int(h * 2)
}
