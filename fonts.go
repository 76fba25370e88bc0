package main

import (
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// BoxFonts holds the three font faces used by the widgets.
// The Go regular font ships as bytes in x/image, so there are no
// font files to load from disk.
type BoxFonts struct {
	large, normal, small font.Face
}

func NewBoxFonts() *BoxFonts {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	makeFace := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	return &BoxFonts{
		large:  makeFace(48),
		normal: makeFace(24),
		small:  makeFace(16),
	}
}
