// Package scene defines the screens the game loop can show.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The loop owns the current scene and
// forwards ticks and frames to it.
type Scene interface {
	// Update advances the scene by dt seconds, the fixed simulation step.
	// A non-nil next scene replaces this one; an error stops the loop.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter runs every time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the window closes.
	// Pending recordings are flushed here.
	OnExit()
}
