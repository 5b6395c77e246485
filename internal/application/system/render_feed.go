package system

import "github.com/younwookim/dodgeball/internal/domain/entity"

// RenderFeed is a read-only copy of the simulation for drawing. Nothing in
// it aliases live state.
type RenderFeed struct {
	LevelName  string
	LevelTitle string
	Width      float64
	Height     float64

	Player      entity.Player
	Platforms   []entity.Platform
	Start       entity.Door
	End         entity.Door
	Drones      []entity.Drone
	Projectiles []entity.Projectile
	PowerUps    []entity.PowerUp // active only

	Health float64
	Energy float64
	Shield bool

	// Camera is the world position of the view's top-left corner.
	CameraX float64
	CameraY float64

	Tick    int
	Outcome Outcome
}

// Snapshot copies the current state for a view of viewW x viewH pixels.
// The camera centers on the player and stays inside the world.
func (s *Simulation) Snapshot(viewW, viewH float64) RenderFeed {
	lvl := s.level
	feed := RenderFeed{
		LevelName:   lvl.Name,
		LevelTitle:  lvl.Title,
		Width:       lvl.Width,
		Height:      lvl.Height,
		Player:      *s.player,
		Platforms:   make([]entity.Platform, len(lvl.Platforms)),
		Start:       lvl.Start,
		End:         lvl.End,
		Drones:      make([]entity.Drone, len(lvl.Drones)),
		Projectiles: make([]entity.Projectile, len(s.projectiles)),
		Health:      s.resources.Health,
		Energy:      s.resources.Energy,
		Shield:      s.resources.Shield,
		CameraX:     follow(s.player.X, viewW, lvl.Width),
		CameraY:     follow(s.player.Y, viewH, lvl.Height),
		Tick:        s.tick,
		Outcome:     s.outcome,
	}

	for i, p := range lvl.Platforms {
		feed.Platforms[i] = *p
	}
	for i, d := range lvl.Drones {
		feed.Drones[i] = *d
	}
	for i, p := range s.projectiles {
		feed.Projectiles[i] = *p
	}
	for _, p := range lvl.PowerUps {
		if p.Active {
			feed.PowerUps = append(feed.PowerUps, *p)
		}
	}

	return feed
}

// follow centers pos in a view of size view, clamped to [0, world-view].
func follow(pos, view, world float64) float64 {
	c := pos - view/2
	if maxC := world - view; c > maxC {
		c = maxC
	}
	if c < 0 {
		c = 0
	}
	return c
}
