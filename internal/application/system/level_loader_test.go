package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/dodgeball/internal/domain/entity"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

func createTestLevelConfig() *config.LevelConfig {
	return &config.LevelConfig{
		Name:       "yard",
		Info:       []string{"line one"},
		Music:      "level1",
		World:      config.WorldConfig{Width: 2000, Height: 600},
		FallPolicy: "clamp",
		Start:      config.RectConfig{X: 10, Y: 500, Width: 40, Height: 40},
		End:        config.RectConfig{X: 1900, Y: 500, Width: 40, Height: 40},
		Platforms: []config.PlatformConfig{
			{RectConfig: config.RectConfig{X: 0, Y: 540, Width: 2000, Height: 60}},
			{
				RectConfig: config.RectConfig{X: 400, Y: 400, Width: 100, Height: 20},
				Moving:     &config.MovingConfig{Axis: "vertical", Speed: 1.5, Min: 300, Max: 450},
			},
		},
		Drones: []config.DroneSpawnConfig{
			{Kind: "patroller", X: 300, Y: 200, VX: 1.5},
			{Kind: "boss", X: 1000, Y: 200, ShootPeriod: 45},
			{Kind: "turret", X: 600, Y: 100, Radius: 22},
		},
		PowerUps: []config.PowerUpSpawnConfig{
			{Kind: "health", X: 100, Y: 100},
			{Kind: "energy", X: 200, Y: 100, Radius: 6},
		},
	}
}

func TestLoadLevel(t *testing.T) {
	tuning := createTestTuning()

	level, err := LoadLevel(createTestLevelConfig(), tuning)
	require.NoError(t, err)

	assert.Equal(t, "yard", level.Name)
	assert.Equal(t, "yard", level.Title) // title falls back to name
	assert.True(t, level.HasInfo())
	assert.Equal(t, entity.FallClamp, level.FallPolicy)
	assert.Equal(t, entity.DoorStart, level.Start.Role)
	assert.Equal(t, entity.DoorEnd, level.End.Role)
	assert.Equal(t, 1900.0, level.End.X)

	require.Len(t, level.Platforms, 2)
	assert.False(t, level.Platforms[0].Moving)
	moving := level.Platforms[1]
	assert.True(t, moving.Moving)
	assert.Equal(t, entity.AxisVertical, moving.Axis)
	assert.Equal(t, 1.0, moving.Dir)
	assert.Equal(t, 300.0, moving.Min)
	assert.Equal(t, 450.0, moving.Max)

	require.Len(t, level.Drones, 3)
	patroller := level.Drones[0]
	assert.Equal(t, entity.DronePatroller, patroller.Kind)
	assert.Equal(t, 15.0, patroller.Radius)
	assert.Equal(t, 90, patroller.ShootPeriod)
	assert.Equal(t, 1.5, patroller.VX)

	boss := level.Drones[1]
	assert.True(t, boss.IsBoss())
	assert.Equal(t, 40.0, boss.Radius)
	assert.Equal(t, 45, boss.ShootPeriod)
	assert.Equal(t, 100.0, boss.Health)
	assert.Equal(t, 100.0, boss.MaxHealth)

	assert.Equal(t, 22.0, level.Drones[2].Radius)
	assert.Zero(t, level.Drones[2].MaxHealth)

	require.Len(t, level.PowerUps, 2)
	assert.Equal(t, entity.PowerUpHealth, level.PowerUps[0].Kind)
	assert.Equal(t, 10.0, level.PowerUps[0].Radius)
	assert.Equal(t, 6.0, level.PowerUps[1].Radius)
	assert.True(t, level.PowerUps[1].Active)
}

func TestLoadLevel_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.LevelConfig)
	}{
		{"unknown fall policy", func(c *config.LevelConfig) { c.FallPolicy = "teleport" }},
		{"unknown drone", func(c *config.LevelConfig) { c.Drones[0].Kind = "kamikaze" }},
		{"unknown power-up", func(c *config.LevelConfig) { c.PowerUps[0].Kind = "ammo" }},
		{"unknown axis", func(c *config.LevelConfig) { c.Platforms[1].Moving.Axis = "diagonal" }},
		{"missing end door", func(c *config.LevelConfig) { c.End = config.RectConfig{} }},
		{"platform outside its bounds", func(c *config.LevelConfig) { c.Platforms[1].Y = 100 }},
		{"empty world", func(c *config.LevelConfig) { c.World = config.WorldConfig{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestLevelConfig()
			tt.mutate(cfg)

			_, err := LoadLevel(cfg, createTestTuning())
			assert.Error(t, err)
		})
	}
}

func TestLoadLevel_ShippedLevels(t *testing.T) {
	loader := config.NewLoader("../../../cmd/game/configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	for _, name := range cfg.Campaign.Levels {
		t.Run(name, func(t *testing.T) {
			level, err := LoadLevel(cfg.Level(name), cfg.Tuning.WithRules(cfg.Level(name).Rules))
			require.NoError(t, err)
			assert.NotEmpty(t, level.Platforms)
			assert.NotEmpty(t, level.Drones)
			assert.NotEmpty(t, level.Music)
		})
	}
}
