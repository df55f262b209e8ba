// Package game provides the ebiten game loop that drives the current scene.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/climb/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	closed  bool
}

// New creates a new Game with the given initial scene ticking at dt.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, dt float64) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      dt,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene once the window is gone.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// ticksPerSecond is the update rate matching the fixed timestep.
func (g *Game) ticksPerSecond() int {
	return int(1/g.dt + 0.5)
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run(title string, scale float64) error {
	ebiten.SetWindowSize(int(float64(g.screenW)*scale), int(float64(g.screenH)*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.ticksPerSecond())
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	defer g.Close()

	return ebiten.RunGame(g)
}
