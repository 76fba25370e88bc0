package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	DebugMode                 bool
	WindowWidth, WindowHeight int
	BoardSize                 int
	theFonts                  *BoxFonts
)

func init() {
	flag.BoolVar(&DebugMode, "debug", false, "turn debug graphics on")
	flag.IntVar(&WindowWidth, "width", 1920/2, "width of window in pixels")
	flag.IntVar(&WindowHeight, "height", 1080/2, "height of window in pixels")
	flag.IntVar(&BoardSize, "s", 0, "board size in boxes per side (1..5), 0 to choose from the menu")
}

func main() {
	flag.Parse()

	if err := validateBoardSize(BoardSize); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	if DebugMode {
		for i, a := range os.Args {
			fmt.Println(i, a)
		}
	}

	theFonts = NewBoxFonts()

	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Boxes")
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// validateBoardSize rejects -s values outside 1..5; zero means
// "not given", in which case the menu picks the size.
func validateBoardSize(n int) error {
	if n == 0 {
		return nil
	}
	if n < MinBoardSize || n > MaxBoardSize {
		return fmt.Errorf("board size %d out of range [%d,%d]", n, MinBoardSize, MaxBoardSize)
	}
	return nil
}
