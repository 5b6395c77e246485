package system

import (
	"fmt"

	"github.com/younwookim/dodgeball/internal/domain/entity"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a validated Level entity. Missing
// radii and shoot periods fall back to the tuning defaults.
func LoadLevel(cfg *config.LevelConfig, tuning *config.TuningConfig) (*entity.Level, error) {
	var fall entity.FallPolicy
	if err := fall.UnmarshalText([]byte(cfg.FallPolicy)); err != nil {
		return nil, fmt.Errorf("level %s: %w", cfg.Name, err)
	}

	level := &entity.Level{
		Name:       cfg.Name,
		Title:      cfg.Title,
		Info:       append([]string(nil), cfg.Info...),
		Music:      cfg.Music,
		Width:      cfg.World.Width,
		Height:     cfg.World.Height,
		FallPolicy: fall,
		Start:      entity.Door{Rect: toRect(cfg.Start), Role: entity.DoorStart},
		End:        entity.Door{Rect: toRect(cfg.End), Role: entity.DoorEnd},
		Platforms:  make([]*entity.Platform, 0, len(cfg.Platforms)),
		Drones:     make([]*entity.Drone, 0, len(cfg.Drones)),
		PowerUps:   make([]*entity.PowerUp, 0, len(cfg.PowerUps)),
	}
	if level.Title == "" {
		level.Title = level.Name
	}

	for i, pc := range cfg.Platforms {
		p, err := loadPlatform(pc)
		if err != nil {
			return nil, fmt.Errorf("level %s: platform %d: %w", cfg.Name, i, err)
		}
		level.Platforms = append(level.Platforms, p)
	}

	for i, dc := range cfg.Drones {
		kind, err := entity.ParseDroneKind(dc.Kind)
		if err != nil {
			return nil, fmt.Errorf("level %s: drone %d: %w", cfg.Name, i, err)
		}
		level.Drones = append(level.Drones, loadDrone(kind, dc, tuning))
	}

	for i, pc := range cfg.PowerUps {
		var kind entity.PowerUpKind
		if err := kind.UnmarshalText([]byte(pc.Kind)); err != nil {
			return nil, fmt.Errorf("level %s: power-up %d: %w", cfg.Name, i, err)
		}
		radius := pc.Radius
		if radius <= 0 {
			radius = tuning.PowerUp.Radius
		}
		level.PowerUps = append(level.PowerUps, entity.NewPowerUp(kind, pc.X, pc.Y, radius))
	}

	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

func loadPlatform(pc config.PlatformConfig) (*entity.Platform, error) {
	if pc.Moving == nil {
		return entity.NewStaticPlatform(pc.X, pc.Y, pc.Width, pc.Height), nil
	}

	var axis entity.Axis
	if err := axis.UnmarshalText([]byte(pc.Moving.Axis)); err != nil {
		return nil, err
	}
	return entity.NewMovingPlatform(pc.X, pc.Y, pc.Width, pc.Height, axis, pc.Moving.Speed, pc.Moving.Min, pc.Moving.Max), nil
}

func loadDrone(kind entity.DroneKind, dc config.DroneSpawnConfig, tuning *config.TuningConfig) *entity.Drone {
	radius := dc.Radius
	if radius <= 0 {
		radius = tuning.Drone.Radius
		if kind == entity.DroneBoss {
			radius = tuning.Boss.Radius
		}
	}
	period := dc.ShootPeriod
	if period <= 0 {
		period = tuning.Drone.ShootPeriod
	}

	d := entity.NewDrone(kind, dc.X, dc.Y, radius, period)
	d.VX, d.VY = dc.VX, dc.VY
	if d.IsBoss() {
		d.MaxHealth = tuning.Boss.Health
		d.Health = tuning.Boss.Health
	}
	return d
}

func toRect(rc config.RectConfig) entity.Rect {
	return entity.Rect{X: rc.X, Y: rc.Y, Width: rc.Width, Height: rc.Height}
}
