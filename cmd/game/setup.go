package main

import (
	"fmt"
	"io/fs"

	"github.com/younwookim/dodgeball/internal/application/system"
	"github.com/younwookim/dodgeball/internal/domain/entity"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

// newLoader returns a loader over dir, or over the embedded configs when
// dir is empty.
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadGame loads every config file and builds the campaign's levels in order.
func loadGame(dir string) (*config.Loader, *config.GameConfig, []*entity.Level, error) {
	loader, err := newLoader(dir)
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	levels := make([]*entity.Level, 0, len(cfg.Campaign.Levels))
	for _, name := range cfg.Campaign.Levels {
		level, err := system.LoadLevel(cfg.Level(name), cfg.LevelTuning(name))
		if err != nil {
			return nil, nil, nil, err
		}
		levels = append(levels, level)
	}

	return loader, cfg, levels, nil
}

// findLevel returns the index of the named level.
func findLevel(levels []*entity.Level, name string) (int, error) {
	for i, l := range levels {
		if l.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", name)
}
