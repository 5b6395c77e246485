// Package campaign drives level progression: menu, optional info screen,
// play, and the timed win or game-over screen that follows each level.
package campaign

import (
	"errors"

	"github.com/younwookim/dodgeball/internal/application/state"
	"github.com/younwookim/dodgeball/internal/application/system"
	"github.com/younwookim/dodgeball/internal/domain/entity"
)

// DefaultTransitionDelay is the time spent on a win or game-over screen.
const DefaultTransitionDelay = 2.0

// Campaign owns the ordered level list and the current GameState.
// It is driven from the game goroutine only.
type Campaign struct {
	levels    []*entity.Level
	index     int
	state     state.GameState
	delay     float64
	remaining float64

	// plays counts how many times a level has entered PLAYING.
	plays int

	// OnChange is called after every state change.
	OnChange func(from, to state.GameState)
}

// New creates a campaign at the menu, pointing at the first level.
// A non-positive delay leaves the ending screens on the next Update.
func New(levels []*entity.Level, delay float64) (*Campaign, error) {
	if len(levels) == 0 {
		return nil, errors.New("campaign has no levels")
	}
	for i, l := range levels {
		if l == nil {
			return nil, errors.New("campaign has a nil level")
		}
		for _, other := range levels[:i] {
			if other.Name == l.Name {
				return nil, errors.New("campaign lists level " + l.Name + " twice")
			}
		}
	}
	return &Campaign{
		levels: append([]*entity.Level(nil), levels...),
		state:  state.StateMenu,
		delay:  delay,
	}, nil
}

// State returns the current game state.
func (c *Campaign) State() state.GameState {
	return c.state
}

// Index returns the zero-based index of the current level.
func (c *Campaign) Index() int {
	return c.index
}

// Len returns the number of levels.
func (c *Campaign) Len() int {
	return len(c.levels)
}

// Level returns the template of the current level.
func (c *Campaign) Level() *entity.Level {
	return c.levels[c.index]
}

// Levels returns the level templates in play order.
func (c *Campaign) Levels() []*entity.Level {
	return c.levels
}

// Plays returns how many times a level has been entered for play. A
// change tells the caller to build a fresh simulation.
func (c *Campaign) Plays() int {
	return c.plays
}

// Remaining returns the seconds left on an ending screen.
func (c *Campaign) Remaining() float64 {
	if !c.state.IsEnding() {
		return 0
	}
	return c.remaining
}

// IsLastLevel reports whether the current level is the final one.
func (c *Campaign) IsLastLevel() bool {
	return c.index == len(c.levels)-1
}

// Select points the campaign at level i. Only valid from the menu.
func (c *Campaign) Select(i int) bool {
	if c.state != state.StateMenu || i < 0 || i >= len(c.levels) {
		return false
	}
	c.index = i
	return true
}

// Start leaves the menu for the current level.
func (c *Campaign) Start() bool {
	if c.state != state.StateMenu {
		return false
	}
	c.enter()
	return true
}

// Restart leaves the menu for the first level.
func (c *Campaign) Restart() bool {
	if c.state != state.StateMenu {
		return false
	}
	c.index = 0
	c.enter()
	return true
}

// Continue dismisses the info screen.
func (c *Campaign) Continue() bool {
	if c.state != state.StateInfo {
		return false
	}
	c.set(state.StatePlaying)
	return true
}

// Finish ends the running level with outcome and starts the transition
// delay. A running outcome is ignored.
func (c *Campaign) Finish(outcome system.Outcome) bool {
	if c.state != state.StatePlaying {
		return false
	}
	switch outcome {
	case system.OutcomeWin:
		c.remaining = c.delay
		c.set(state.StateWin)
	case system.OutcomeGameOver:
		c.remaining = c.delay
		c.set(state.StateGameOver)
	default:
		return false
	}
	return true
}

// Update counts down an ending screen. When the delay expires a win moves
// to the next level, or back to the menu after the last one; a game over
// returns to the menu. Returns true when the state changed.
func (c *Campaign) Update(dt float64) bool {
	if !c.state.IsEnding() {
		return false
	}
	if dt > 0 {
		c.remaining -= dt
	}
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0

	if c.state == state.StateGameOver {
		c.set(state.StateMenu)
		return true
	}

	if c.IsLastLevel() {
		c.index = 0
		c.set(state.StateMenu)
		return true
	}
	c.index++
	c.enter()
	return true
}

// Quit abandons the current level and returns to the menu.
func (c *Campaign) Quit() bool {
	if c.state == state.StateMenu {
		return false
	}
	c.remaining = 0
	c.set(state.StateMenu)
	return true
}

// Replace swaps in a reloaded level template with the same name. The new
// template is used the next time that level is entered.
func (c *Campaign) Replace(level *entity.Level) bool {
	for i, l := range c.levels {
		if l.Name == level.Name {
			c.levels[i] = level
			return true
		}
	}
	return false
}

func (c *Campaign) enter() {
	if c.Level().HasInfo() {
		c.set(state.StateInfo)
	} else {
		c.set(state.StatePlaying)
	}
	c.plays++
}

func (c *Campaign) set(to state.GameState) {
	from := c.state
	c.state = to
	if c.OnChange != nil {
		c.OnChange(from, to)
	}
}
