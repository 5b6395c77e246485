// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/dodgeball/internal/application/scene"
)

// DefaultMaxDT caps the frame delta after a stall (seconds).
const DefaultMaxDT = 0.1

// Game implements ebiten.Game and manages Scene transitions.
// Scenes receive the wall-clock time since the previous Update.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	now   func() time.Time
	last  time.Time
	maxDT float64
	dt    float64 // fixed delta when > 0
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		now:     time.Now,
		maxDT:   DefaultMaxDT,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.frameDT())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// frameDT measures the time since the previous frame, clamped to
// [0, maxDT]. The first frame has no predecessor and gets 0.
func (g *Game) frameDT() float64 {
	if g.dt > 0 {
		return g.dt
	}

	t := g.now()
	if g.last.IsZero() {
		g.last = t
		return 0
	}
	dt := t.Sub(g.last).Seconds()
	g.last = t

	if dt < 0 {
		return 0
	}
	if g.maxDT > 0 && dt > g.maxDT {
		return g.maxDT
	}
	return dt
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

// SetDT fixes the delta time used for updates, bypassing the clock.
// Useful for testing. Zero restores wall-clock timing.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetMaxDT sets the upper clamp on measured frame deltas.
func (g *Game) SetMaxDT(maxDT float64) {
	g.maxDT = maxDT
}

// SetClock replaces the wall clock.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}
