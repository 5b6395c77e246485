package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StateInfo
	StatePlaying
	StateGameOver
	StateWin
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateInfo:
		return "Info"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// IsEnding reports whether the state is a post-level screen that leaves
// on its own after the transition delay.
func (s GameState) IsEnding() bool {
	return s == StateGameOver || s == StateWin
}
