package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/dodgeball/internal/application/state"
	"github.com/younwookim/dodgeball/internal/application/system"
	"github.com/younwookim/dodgeball/internal/domain/entity"
)

// Colors for rendering
var (
	colorBackground     = colornames.Midnightblue
	colorPlatform       = colornames.Slategray
	colorMovingPlatform = colornames.Steelblue
	colorStartDoor      = colornames.Seagreen
	colorEndDoor        = colornames.Gold
	colorPlayer         = colornames.White
	colorShield         = color.RGBA{0, 200, 255, 160}
	colorDrone          = colornames.Tomato
	colorBoss           = colornames.Darkviolet
	colorProjectile     = colornames.Orangered
	colorHealthPickup   = colornames.Limegreen
	colorEnergyPickup   = colornames.Deepskyblue
	colorBarBG          = color.RGBA{60, 60, 60, 255}
	colorHealthBar      = colornames.Crimson
	colorEnergyBar      = colornames.Dodgerblue
	colorBossBar        = colornames.Mediumpurple
	colorInfoOverlay    = color.RGBA{0, 0, 0, 200}
	colorWinOverlay     = color.RGBA{0, 80, 0, 180}
	colorGameOver       = color.RGBA{100, 0, 0, 180}
)

// paletteColor looks up a colornames key, falling back when unknown.
func paletteColor(name string, fallback color.Color) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return fallback
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.background)
	if p.sim == nil {
		return
	}

	f := &p.feed
	camX, camY := f.CameraX, f.CameraY

	// Draw world
	p.drawDoors(screen, f, camX, camY)
	p.drawPlatforms(screen, f, camX, camY)
	p.drawPowerUps(screen, f, camX, camY)
	p.drawDrones(screen, f, camX, camY)
	p.drawProjectiles(screen, f, camX, camY)
	p.drawPlayer(screen, f, camX, camY)

	// Draw UI - always on top
	p.drawHUD(screen, f)

	// Draw state overlays
	switch p.campaign.State() {
	case state.StateInfo:
		p.drawInfoOverlay(screen)
	case state.StateWin:
		p.drawWinOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawDoors(screen *ebiten.Image, f *system.RenderFeed, camX, camY float64) {
	drawRect(screen, f.Start.Rect, camX, camY, colorStartDoor)
	drawRect(screen, f.End.Rect, camX, camY, colorEndDoor)
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, f *system.RenderFeed, camX, camY float64) {
	for _, pl := range f.Platforms {
		c := colorPlatform
		if pl.Moving {
			c = colorMovingPlatform
		}
		drawRect(screen, pl.Rect, camX, camY, c)
	}
}

func (p *Playing) drawPowerUps(screen *ebiten.Image, f *system.RenderFeed, camX, camY float64) {
	for _, pu := range f.PowerUps {
		c := colorHealthPickup
		if pu.Kind == entity.PowerUpEnergy {
			c = colorEnergyPickup
		}
		drawCircle(screen, pu.Circle(), camX, camY, c)
	}
}

func (p *Playing) drawDrones(screen *ebiten.Image, f *system.RenderFeed, camX, camY float64) {
	for _, d := range f.Drones {
		c := colorDrone
		if d.IsBoss() {
			c = colorBoss
		}
		drawCircle(screen, d.Circle(), camX, camY, c)
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, f *system.RenderFeed, camX, camY float64) {
	for _, pr := range f.Projectiles {
		drawCircle(screen, pr.Circle(), camX, camY, paletteColor(pr.Color, colorProjectile))
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, f *system.RenderFeed, camX, camY float64) {
	c := f.Player.Circle()
	drawCircle(screen, c, camX, camY, colorPlayer)

	if f.Shield {
		vector.StrokeCircle(screen, float32(c.X-camX), float32(c.Y-camY), float32(c.Radius+6), 3, colorShield, true)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image, f *system.RenderFeed) {
	// Health and energy bars
	drawBar(screen, 10, 10, 200, 12, f.Health/entity.MaxGauge, colorHealthBar)
	drawBar(screen, 10, 28, 200, 12, f.Energy/entity.MaxGauge, colorEnergyBar)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %3.0f", f.Health), 216, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("EN %3.0f", f.Energy), 216, 26)

	// Boss health, display only
	for _, d := range f.Drones {
		if d.IsBoss() && d.MaxHealth > 0 {
			w := float64(p.screenW) / 2
			drawBar(screen, float64(p.screenW)/4, float64(p.screenH)-24, w, 10, d.Health/d.MaxHealth, colorBossBar)
			ebitenutil.DebugPrintAt(screen, "BOSS", p.screenW/4-36, p.screenH-28)
			break
		}
	}

	ebitenutil.DebugPrintAt(screen, f.LevelTitle, p.screenW-len(f.LevelTitle)*6-10, 8)
	if p.recorder != nil {
		ebitenutil.DebugPrintAt(screen, "REC", p.screenW-30, 26)
	}
	if p.audio.Muted() {
		ebitenutil.DebugPrintAt(screen, "muted", p.screenW-40, 44)
	}
}

func (p *Playing) drawInfoOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorInfoOverlay, false)

	level := p.campaign.Level()
	y := p.screenH / 3
	ebitenutil.DebugPrintAt(screen, level.Title, 60, y)
	for i, line := range level.Info {
		ebitenutil.DebugPrintAt(screen, line, 60, y+32+i*18)
	}
	ebitenutil.DebugPrintAt(screen, "Press Enter to start", 60, y+48+len(level.Info)*18)
}

func (p *Playing) drawWinOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorWinOverlay, false)

	text := "LEVEL CLEAR"
	if p.campaign.IsLastLevel() {
		text = "YOU WIN"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s\n\n%.1f", text, p.campaign.Remaining()), p.screenW/2-40, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorGameOver, false)

	reason := "Out of health"
	if p.cause == system.CauseFall {
		reason = "You fell"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GAME OVER\n\n%s\n\n%.1f", reason, p.campaign.Remaining()), p.screenW/2-40, p.screenH/2-30)
}

func drawRect(screen *ebiten.Image, r entity.Rect, camX, camY float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X-camX), float32(r.Y-camY), float32(r.Width), float32(r.Height), c, false)
}

func drawCircle(screen *ebiten.Image, c entity.Circle, camX, camY float64, clr color.Color) {
	vector.DrawFilledCircle(screen, float32(c.X-camX), float32(c.Y-camY), float32(c.Radius), clr, true)
}

// drawBar draws a gauge filled to ratio, clamped to [0, 1]
func drawBar(screen *ebiten.Image, x, y, w, h, ratio float64, c color.Color) {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorBarBG, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*ratio), float32(h), c, false)
}
