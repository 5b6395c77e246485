package system

import (
	"github.com/younwookim/dodgeball/internal/domain/entity"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

// seqSource replays a fixed sequence of Float64 values, cycling.
type seqSource struct {
	values []float64
	i      int
}

func (s *seqSource) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func newSeqSource(values ...float64) *seqSource {
	return &seqSource{values: values}
}

func createTestTuning() *config.TuningConfig {
	return &config.TuningConfig{
		Loop: config.LoopConfig{
			MaxDT:           0.1,
			TransitionDelay: 2,
		},
		Player: config.PlayerConfig{
			Radius:    15,
			Gravity:   0.5,
			Friction:  0.8,
			MoveSpeed: 5,
			JumpForce: -12,
		},
		Resources: config.ResourceConfig{
			DrainRate:   20,
			RegenRate:   8,
			PenaltyRate: 2,
		},
		Drone: config.DroneConfig{
			Radius:             15,
			ShootPeriod:        90,
			ShootRange:         500,
			Jitter:             0.15,
			ContactDamage:      2,
			Knockback:          8,
			PatrolFlipPeriod:   100,
			VerticalFlipPeriod: 80,
			ChaseRange:         300,
			ChaseSpeed:         2,
			WanderPeriod:       50,
			WanderSpeed:        1,
			BouncePeriod:       30,
			BounceSpeed:        2,
		},
		Boss: config.BossConfig{
			Radius:       40,
			Health:       100,
			Jitter:       0.05,
			Cycle:        120,
			CircleEnd:    60,
			ChargeEnd:    90,
			AngleRate:    0.05,
			CircleSpeed:  2,
			ChargeSpeed:  3,
			RetreatSpeed: 2,
		},
		Projectile: config.ProjectileConfig{
			Speed:     5,
			BossSpeed: 8,
			Radius:    5,
			MaxAge:    120,
			Damage:    5,
			Color:     "orangered",
			BossColor: "magenta",
		},
		PowerUp: config.PowerUpConfig{
			Radius:       10,
			HealthAmount: 25,
			EnergyAmount: 50,
		},
	}
}

// createTestLevel returns an empty 3000x600 world with the exit far away.
func createTestLevel() *entity.Level {
	return &entity.Level{
		Name:   "test",
		Title:  "Test",
		Music:  "test-track",
		Width:  3000,
		Height: 600,
		Start:  entity.Door{Rect: entity.Rect{X: 80, Y: 70, Width: 40, Height: 60}, Role: entity.DoorStart},
		End:    entity.Door{Rect: entity.Rect{X: 2900, Y: 500, Width: 40, Height: 60}, Role: entity.DoorEnd},
	}
}
