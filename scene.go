package main

import "github.com/hajimehoshi/ebiten/v2"

// GameScene interface defines the API for each game scene
// each separate game scene (eg Splash, Menu, Board &c) must implement these
type GameScene interface {
	Layout(int, int) (int, int)
	Update() error
	Draw(*ebiten.Image)
}

// SceneManager keeps a stack of scenes; the top of the stack is live
type SceneManager struct {
	stack []GameScene
}

// Switch replaces the current GameScene with a different one
func (sm *SceneManager) Switch(scene GameScene) {
	if len(sm.stack) == 0 {
		sm.stack = append(sm.stack, scene)
	} else {
		sm.stack[len(sm.stack)-1] = scene
	}
}

// Push makes scene current, remembering the scene underneath it
func (sm *SceneManager) Push(scene GameScene) {
	sm.stack = append(sm.stack, scene)
}

// Pop returns to the scene underneath the current one;
// returns false (and does nothing) if there isn't one
func (sm *SceneManager) Pop() bool {
	if len(sm.stack) < 2 {
		return false
	}
	sm.stack = sm.stack[:len(sm.stack)-1]
	return true
}

// Get returns the current GameScene
func (sm *SceneManager) Get() GameScene {
	return sm.stack[len(sm.stack)-1]
}
