// Package playing provides the gameplay scene: the info screen, the level
// itself and the timed win and game-over screens that follow it.
package playing

import (
	"image/color"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/dodgeball/internal/application/campaign"
	"github.com/younwookim/dodgeball/internal/application/replay"
	"github.com/younwookim/dodgeball/internal/application/scene"
	"github.com/younwookim/dodgeball/internal/application/state"
	"github.com/younwookim/dodgeball/internal/application/system"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

// InputSource produces the per-tick input snapshot
type InputSource interface {
	GetInput() system.InputState
}

// Reloader reports level files that changed on disk
type Reloader interface {
	Drain() []string
}

// LevelSource re-reads a level file by name
type LevelSource interface {
	LoadLevel(name string) (*config.LevelConfig, error)
}

// Options configures a Playing scene
type Options struct {
	// Seed fixes the random seed of every run. Zero picks a new one per run.
	Seed int64

	// Record saves each run's inputs to RecordDir when it ends.
	Record    bool
	RecordDir string

	// Reloader and Levels enable level hot reload. Both or neither.
	Reloader Reloader
	Levels   LevelSource
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	campaign *campaign.Campaign
	input    InputSource
	controls scene.Controls
	audio    scene.Audio
	toMenu   func() scene.Scene
	opts     Options

	sim   *system.Simulation
	feed  system.RenderFeed
	cause system.Cause
	plays int
	seed  int64

	recorder *replay.Recorder

	screenW    int
	screenH    int
	background color.Color
}

// New creates a new Playing scene. toMenu returns the scene to switch to
// once the campaign is back at the menu.
func New(cfg *config.GameConfig, c *campaign.Campaign, input InputSource, controls scene.Controls, audio scene.Audio, toMenu func() scene.Scene, opts Options) *Playing {
	return &Playing{
		config:     cfg,
		campaign:   c,
		input:      input,
		controls:   controls,
		audio:      audio,
		toMenu:     toMenu,
		opts:       opts,
		screenW:    cfg.Tuning.Display.ScreenWidth,
		screenH:    cfg.Tuning.Display.ScreenHeight,
		background: paletteColor(cfg.Tuning.Display.Background, colorBackground),
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.reloadLevels()

	if p.controls.Mute() {
		p.audio.SetMuted(!p.audio.Muted())
	}

	if p.campaign.State() == state.StateMenu {
		return p.toMenu(), nil
	}

	// Quit to menu
	if p.controls.Back() && p.campaign.Quit() {
		p.saveRecording()
		return p.toMenu(), nil
	}

	p.syncRun()

	switch p.campaign.State() {
	case state.StateInfo:
		if p.controls.Confirm() {
			p.campaign.Continue()
		}
	case state.StatePlaying:
		p.updatePlaying(dt)
	case state.StateWin, state.StateGameOver:
		p.campaign.Update(dt)
	}

	if p.campaign.State() == state.StateMenu {
		return p.toMenu(), nil
	}

	// A win may have moved on to the next level
	p.syncRun()
	p.feed = p.sim.Snapshot(float64(p.screenW), float64(p.screenH))

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64) {
	// F5: Save recording manually
	if p.controls.Save() {
		p.writeRecording()
	}

	input := p.input.GetInput()

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input, dt)
	}

	res := p.sim.Step(input, dt)
	for _, ev := range res.Events {
		p.audio.Handle(ev)
	}

	if res.Outcome == system.OutcomeRunning {
		return
	}

	p.cause = res.Cause
	p.campaign.Finish(res.Outcome)
	log.Info("level finished",
		"level", p.campaign.Level().Name,
		"outcome", res.Outcome,
		"cause", res.Cause,
		"ticks", p.sim.Tick(),
	)
	p.saveRecording()
}

// syncRun builds a fresh simulation whenever the campaign enters a level.
func (p *Playing) syncRun() {
	if p.sim != nil && p.plays == p.campaign.Plays() {
		return
	}
	p.saveRecording()

	level := p.campaign.Level()
	p.plays = p.campaign.Plays()
	p.seed = p.opts.Seed
	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
	}
	p.cause = system.CauseNone
	p.sim = system.NewSimulation(p.config.LevelTuning(level.Name), level, system.NewSource(p.seed))
	p.feed = p.sim.Snapshot(float64(p.screenW), float64(p.screenH))

	if p.opts.Record {
		p.recorder = replay.NewRecorder(p.seed, level.Name)
	}

	log.Info("level started", "level", level.Name, "index", p.campaign.Index(), "seed", p.seed)
}

// reloadLevels re-reads changed level files. A reloaded level replaces the
// campaign's template and takes effect the next time the level starts.
func (p *Playing) reloadLevels() {
	if p.opts.Reloader == nil || p.opts.Levels == nil {
		return
	}

	for _, name := range p.opts.Reloader.Drain() {
		if p.config.Level(name) == nil {
			continue
		}

		lc, err := p.opts.Levels.LoadLevel(name)
		if err != nil {
			log.Warn("level reload failed", "level", name, "error", err)
			continue
		}
		level, err := system.LoadLevel(lc, p.config.Tuning.WithRules(lc.Rules))
		if err != nil {
			log.Warn("level reload rejected", "level", name, "error", err)
			continue
		}

		p.config.Levels[name] = lc
		p.campaign.Replace(level)
		log.Info("level reloaded", "level", name)
	}
}

// writeRecording saves the current recording to file without stopping it
func (p *Playing) writeRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	data := p.recorder.GetData()
	filename := filepath.Join(p.opts.RecordDir, replay.GenerateFilename(data.Level))
	if err := p.recorder.Save(filename); err != nil {
		log.Error("failed to save recording", "file", filename, "error", err)
		return
	}
	log.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount(), "seed", data.Seed)
}

// saveRecording writes and closes the current recording
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	p.writeRecording()
	p.recorder.Stop()
	p.recorder = nil
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.syncRun()
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
