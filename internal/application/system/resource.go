package system

import (
	"github.com/younwookim/dodgeball/internal/domain/entity"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

// ResourceSystem drives the shield/energy/health gauges.
type ResourceSystem struct {
	config *config.ResourceConfig
}

// NewResourceSystem creates a new resource system
func NewResourceSystem(cfg *config.ResourceConfig) *ResourceSystem {
	return &ResourceSystem{config: cfg}
}

// Update advances the gauges by dt seconds. The shield is up only while
// held with energy left. An empty energy gauge bleeds health.
// Returns true when health is depleted.
func (s *ResourceSystem) Update(res *entity.Resources, shieldHeld bool, dt float64) bool {
	if shieldHeld && res.Energy > 0 {
		res.Shield = true
		res.Drain(s.config.DrainRate * dt)
	} else {
		res.Shield = false
		res.Recharge(s.config.RegenRate * dt)
	}

	// Exhausted energy costs health
	if res.Energy <= 0 {
		res.Damage(s.config.PenaltyRate * dt)
	}

	return res.Depleted()
}
