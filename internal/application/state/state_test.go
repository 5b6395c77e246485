package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateMenu, "Menu"},
		{StateInfo, "Info"},
		{StatePlaying, "Playing"},
		{StateGameOver, "GameOver"},
		{StateWin, "Win"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateMenu)
	assert.Equal(t, GameState(1), StateInfo)
	assert.Equal(t, GameState(2), StatePlaying)
	assert.Equal(t, GameState(3), StateGameOver)
	assert.Equal(t, GameState(4), StateWin)
}

func TestGameState_IsEnding(t *testing.T) {
	assert.False(t, StateMenu.IsEnding())
	assert.False(t, StateInfo.IsEnding())
	assert.False(t, StatePlaying.IsEnding())
	assert.True(t, StateGameOver.IsEnding())
	assert.True(t, StateWin.IsEnding())
}
