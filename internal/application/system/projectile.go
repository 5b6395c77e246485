package system

import (
	"github.com/younwookim/dodgeball/internal/domain/entity"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

// ProjectileSystem moves projectiles and removes spent ones.
type ProjectileSystem struct {
	config *config.ProjectileConfig
}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem(cfg *config.ProjectileConfig) *ProjectileSystem {
	return &ProjectileSystem{config: cfg}
}

// Update moves and ages every projectile, then filters in one pass. Checks
// run in a fixed order and stop at the first hit: bounds or age, then the
// player (drone shots only), then each platform.
func (s *ProjectileSystem) Update(projectiles []*entity.Projectile, level *entity.Level, player *entity.Player, res *entity.Resources, events *EventBuffer) []*entity.Projectile {
	kept := projectiles[:0]
	for _, p := range projectiles {
		p.Integrate()
		p.Age++

		if p.OutOfBounds(level.Width, level.Height) || p.Age > s.config.MaxAge {
			continue
		}

		if p.Source == entity.SourceDrone && entity.CirclesIntersect(p.Circle(), player.Circle()) {
			// The shield eats the shot without damage
			if !res.Shield {
				res.Damage(s.config.Damage)
				events.Sound(CueCollision)
			}
			continue
		}

		if hitsPlatform(p, level.Platforms) {
			continue
		}

		kept = append(kept, p)
	}

	// Drop references held past the new length
	for i := len(kept); i < len(projectiles); i++ {
		projectiles[i] = nil
	}
	return kept
}

func hitsPlatform(p *entity.Projectile, platforms []*entity.Platform) bool {
	for _, plat := range platforms {
		if entity.CircleIntersectsRect(p.Circle(), plat.Rect) {
			return true
		}
	}
	return false
}
