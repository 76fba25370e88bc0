package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type stubScene struct{ name string }

func (s *stubScene) Layout(w, h int) (int, int) { return w, h }
func (s *stubScene) Update() error              { return nil }
func (s *stubScene) Draw(*ebiten.Image)         {}

func TestSceneManagerSwitch(t *testing.T) {
	sm := &SceneManager{}
	a := &stubScene{name: "a"}
	b := &stubScene{name: "b"}

	sm.Switch(a)
	assert.Same(t, a, sm.Get())

	sm.Switch(b) // replaces a
	assert.Same(t, b, sm.Get())
	assert.False(t, sm.Pop(), "nothing underneath after Switch")
	assert.Same(t, b, sm.Get())
}

func TestSceneManagerPushPop(t *testing.T) {
	sm := &SceneManager{}
	menu := &stubScene{name: "menu"}
	board := &stubScene{name: "board"}

	sm.Switch(menu)
	sm.Push(board)
	assert.Same(t, board, sm.Get())

	assert.True(t, sm.Pop())
	assert.Same(t, menu, sm.Get())
}
