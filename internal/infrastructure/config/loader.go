package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning   *TuningConfig
	Campaign *CampaignConfig
	Levels   map[string]*LevelConfig
}

// Level returns the named level config, or nil.
func (g *GameConfig) Level(name string) *LevelConfig {
	return g.Levels[name]
}

// LevelTuning returns the tuning with the named level's rule overrides applied.
func (g *GameConfig) LevelTuning(name string) *TuningConfig {
	if lvl := g.Levels[name]; lvl != nil {
		return g.Tuning.WithRules(lvl.Rules)
	}
	return g.Tuning
}

// Loader loads game configuration using the fs.FS interface.
// tuning.json is JSON; campaign and level files are YAML.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created with.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads tuning.json
func (l *Loader) LoadTuning() (*TuningConfig, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.json: %w", err)
	}

	var cfg TuningConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: %w", err)
	}

	return &cfg, nil
}

// LoadCampaign loads campaign.yaml
func (l *Loader) LoadCampaign() (*CampaignConfig, error) {
	data, err := fs.ReadFile(l.fsys, "campaign.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign.yaml: %w", err)
	}

	var cfg CampaignConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse campaign.yaml: %w", err)
	}
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("campaign.yaml lists no levels")
	}

	return &cfg, nil
}

// LoadLevel loads a level YAML file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	p := path.Join("levels", name+".yaml")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}

	return &cfg, nil
}

// LoadAll loads tuning, the campaign and every level it lists
func (l *Loader) LoadAll() (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	campaign, err := l.LoadCampaign()
	if err != nil {
		return nil, err
	}

	levels := make(map[string]*LevelConfig, len(campaign.Levels))
	for _, name := range campaign.Levels {
		lvl, err := l.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		levels[name] = lvl
	}

	return &GameConfig{
		Tuning:   tuning,
		Campaign: campaign,
		Levels:   levels,
	}, nil
}
