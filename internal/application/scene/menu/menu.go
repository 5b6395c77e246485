// Package menu provides the title screen and level select.
package menu

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/dodgeball/internal/application/campaign"
	"github.com/younwookim/dodgeball/internal/application/scene"
	"github.com/younwookim/dodgeball/internal/application/system"
)

// Track is the music played on the menu.
const Track = "menu"

// Menu is the title screen. It lets the player pick a level and hands
// over to the playing scene once the campaign leaves MENU.
type Menu struct {
	campaign *campaign.Campaign
	controls scene.Controls
	audio    scene.Audio
	play     func() scene.Scene

	title      string
	screenW    int
	screenH    int
	background color.Color
}

// New creates a new menu scene. play returns the scene to switch to when
// a level starts.
func New(c *campaign.Campaign, controls scene.Controls, audio scene.Audio, play func() scene.Scene, title string, screenW, screenH int, background color.Color) *Menu {
	return &Menu{
		campaign:   c,
		controls:   controls,
		audio:      audio,
		play:       play,
		title:      title,
		screenW:    screenW,
		screenH:    screenH,
		background: background,
	}
}

// Update handles level selection (implements scene.Scene)
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	if m.controls.Back() {
		return nil, ebiten.Termination
	}

	if m.controls.Mute() {
		m.audio.SetMuted(!m.audio.Muted())
	}

	// Level select
	if m.controls.Prev() {
		m.campaign.Select(m.campaign.Index() - 1)
	}
	if m.controls.Next() {
		m.campaign.Select(m.campaign.Index() + 1)
	}

	if m.controls.Restart() && m.campaign.Restart() {
		return m.play(), nil
	}
	if m.controls.Confirm() && m.campaign.Start() {
		return m.play(), nil
	}

	return nil, nil
}

// Draw renders the title and the level list
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(m.background)

	ebitenutil.DebugPrintAt(screen, m.title, m.screenW/2-len(m.title)*3, m.screenH/4)

	x := m.screenW/2 - 120
	for i, l := range m.campaign.Levels() {
		y := m.screenH/3 + i*24
		if i == m.campaign.Index() {
			vector.DrawFilledRect(screen, float32(x-8), float32(y-4), 256, 22, colornames.Darkslateblue, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d. %s", i+1, l.Title), x, y)
	}

	help := "Up/Down: select | Enter: play | R: restart from level 1 | M: mute | Esc: quit"
	ebitenutil.DebugPrintAt(screen, help, 10, m.screenH-20)

	if m.audio.Muted() {
		ebitenutil.DebugPrintAt(screen, "muted", m.screenW-50, 10)
	}
}

// OnEnter starts the menu music
func (m *Menu) OnEnter() {
	log.Debug("menu", "level", m.campaign.Level().Name)
	m.audio.Handle(system.MusicEvent{Track: Track})
}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}
