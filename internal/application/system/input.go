package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSystem samples the keyboard, mouse and touch screen
type InputSystem struct {
	touches []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState is the snapshot the simulation reads once per tick.
type InputState struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Shield bool
	// Shield cursor or touch point, screen pixels. No rule reads it.
	ShieldX int
	ShieldY int
}

// GetInput reads the current input state. Arrows and WASD move; the left
// mouse button, either Shift key or any touch holds the shield.
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	in := InputState{
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Down:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Shield:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeyShift),
		ShieldX: mx,
		ShieldY: my,
	}

	s.touches = ebiten.AppendTouchIDs(s.touches[:0])
	if len(s.touches) > 0 {
		in.Shield = true
		in.ShieldX, in.ShieldY = ebiten.TouchPosition(s.touches[0])
	}

	return in
}
