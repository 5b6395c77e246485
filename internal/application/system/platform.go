package system

import "github.com/younwookim/dodgeball/internal/domain/entity"

// PlatformSystem moves oscillating platforms.
type PlatformSystem struct{}

// NewPlatformSystem creates a new platform system
func NewPlatformSystem() *PlatformSystem {
	return &PlatformSystem{}
}

// Update advances every moving platform by one tick. A platform that
// reaches or passes a bound turns around on the same tick; the overshoot
// is kept.
func (s *PlatformSystem) Update(platforms []*entity.Platform) {
	for _, p := range platforms {
		if !p.Moving {
			p.DeltaX, p.DeltaY = 0, 0
			continue
		}

		p.SetCoord(p.Coord() + p.Dir*p.Speed)

		c := p.Coord()
		if c <= p.Min {
			p.Dir = 1
		} else if c >= p.Max {
			p.Dir = -1
		}
	}
}
