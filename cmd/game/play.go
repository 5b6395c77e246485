package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"github.com/younwookim/dodgeball/internal/application/campaign"
	"github.com/younwookim/dodgeball/internal/application/game"
	"github.com/younwookim/dodgeball/internal/application/scene"
	"github.com/younwookim/dodgeball/internal/application/scene/menu"
	"github.com/younwookim/dodgeball/internal/application/scene/playing"
	"github.com/younwookim/dodgeball/internal/application/state"
	"github.com/younwookim/dodgeball/internal/application/system"
	"github.com/younwookim/dodgeball/internal/infrastructure/audio"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

var (
	flagLevel     string
	flagRecord    bool
	flagRecordDir string
	flagWatch     bool
	flagMute      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Open the game window at the title menu.

Controls:
  Arrows/WASD      - Move, Up/W/Space jumps
  Mouse/Shift      - Hold to raise the shield (touch works too)
  Enter            - Start level / dismiss info screen
  R                - Restart from level 1 (menu)
  M                - Mute
  F5               - Save recording now (with --record)
  Esc              - Back to menu / quit

Examples:
  dodgeball play
  dodgeball play --level level3 --seed 42
  dodgeball play --record --record-dir ./replays
  dodgeball play --configs ./cmd/game/configs --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Start directly at this level")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record each level run to a replay file")
	playCmd.Flags().StringVar(&flagRecordDir, "record-dir", ".", "Directory for replay files")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload level files when they change (needs --configs)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagWatch && flagConfigs == "" {
		return fmt.Errorf("--watch needs --configs: embedded levels cannot change")
	}

	loader, cfg, levels, err := loadGame(flagConfigs)
	if err != nil {
		return err
	}

	c, err := campaign.New(levels, cfg.Tuning.Loop.TransitionDelay)
	if err != nil {
		return err
	}
	c.OnChange = func(from, to state.GameState) {
		log.Debug("state", "from", from, "to", to, "level", c.Level().Name)
	}

	// Audio degrades to silence without a device
	player := audio.NewPlayer(&cfg.Tuning.Audio)
	if err := player.Init(); err != nil {
		log.Warn("audio unavailable, running silent", "error", err)
	}
	defer player.Close()
	player.SetMuted(flagMute)

	opts := playing.Options{
		Seed:      flagSeed,
		Record:    flagRecord,
		RecordDir: flagRecordDir,
	}
	if flagWatch {
		watcher, err := config.NewWatcher(filepath.Join(loader.BasePath(), "levels"))
		if err != nil {
			return fmt.Errorf("failed to watch levels: %w", err)
		}
		defer func() { _ = watcher.Close() }()
		opts.Reloader = watcher
		opts.Levels = loader
		log.Info("watching levels", "dir", filepath.Join(loader.BasePath(), "levels"))
	}

	display := cfg.Tuning.Display
	title := cfg.Campaign.Title
	if title == "" {
		title = display.Title
	}
	background, ok := colornames.Map[display.Background]
	if !ok {
		background = colornames.Midnightblue
	}

	controls := scene.NewKeyboard()
	var menuScene *menu.Menu
	var playScene *playing.Playing
	menuScene = menu.New(c, controls, player, func() scene.Scene { return playScene }, title, display.ScreenWidth, display.ScreenHeight, background)
	playScene = playing.New(cfg, c, system.NewInputSystem(), controls, player, func() scene.Scene { return menuScene }, opts)

	var initial scene.Scene = menuScene
	if flagLevel != "" {
		i, err := findLevel(levels, flagLevel)
		if err != nil {
			return err
		}
		c.Select(i)
		c.Start()
		initial = playScene
	}

	g := game.New(initial, display.ScreenWidth, display.ScreenHeight)
	g.SetMaxDT(cfg.Tuning.Loop.MaxDT)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)

	log.Info("starting", "levels", len(levels), "seed", flagSeed, "record", flagRecord)

	// Run game. Escape on the menu ends it with a nil error.
	return ebiten.RunGame(g)
}
