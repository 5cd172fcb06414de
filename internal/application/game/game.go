// Package game provides the main loop manager that paces frames and
// handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/minwoo-choi/crossing/internal/application/scene"
	"github.com/minwoo-choi/crossing/internal/application/system"
)

// Game implements ebiten.Game. It ticks the frame clock, delegates to
// the current Scene, and handles transitions.
type Game struct {
	current scene.Scene
	clock   *system.Clock
	now     func() time.Time
	screenW int
	screenH int
}

// New creates a Game with the given initial scene and frame clock.
// The clock is shared with scenes that reseed it on session resets.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, clock *system.Clock, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		clock:   clock,
		now:     time.Now,
		screenW: screenW,
		screenH: screenH,
	}
	g.current.OnEnter()
	return g
}

// Update computes the frame delta, updates the current scene, and
// handles scene transitions. Implements ebiten.Game.
func (g *Game) Update() error {
	dt := g.clock.Tick(g.now())

	next, err := g.current.Update(dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		// A scene swap can follow any amount of idle time on an
		// overlay; the next delta must not include it.
		g.clock.Seed(g.now())
	}

	return nil
}

// Draw renders the current scene. Implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetNowFunc replaces the time source. Used by tests.
func (g *Game) SetNowFunc(now func() time.Time) {
	g.now = now
}
