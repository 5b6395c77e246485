package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard reads Controls from ebiten's keyboard, mouse and touch state.
type Keyboard struct {
	touches []ebiten.TouchID
}

// NewKeyboard creates keyboard controls
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Confirm is Enter, Space, a left click or a new touch.
func (k *Keyboard) Confirm() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	k.touches = inpututil.AppendJustPressedTouchIDs(k.touches[:0])
	return len(k.touches) > 0
}

// Back is Escape.
func (k *Keyboard) Back() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Prev is Up or W.
func (k *Keyboard) Prev() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW)
}

// Next is Down or S.
func (k *Keyboard) Next() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS)
}

// Restart is R.
func (k *Keyboard) Restart() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// Mute is M.
func (k *Keyboard) Mute() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

// Save is F5.
func (k *Keyboard) Save() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF5)
}
