package system

import (
	"math"

	"github.com/younwookim/dodgeball/internal/domain/entity"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

// PlayerOutcome reports a level-ending condition found by the player step.
type PlayerOutcome int

const (
	PlayerAlive PlayerOutcome = iota
	PlayerFell
	PlayerReachedExit
)

// PhysicsSystem is the player controller: input, gravity, platform
// collision, world bounds, exit and pickups.
type PhysicsSystem struct {
	config  *config.PlayerConfig
	pickups *config.PowerUpConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PlayerConfig, pickups *config.PowerUpConfig) *PhysicsSystem {
	return &PhysicsSystem{
		config:  cfg,
		pickups: pickups,
	}
}

// Update runs one player tick against the level. Movement values are per
// tick; dt only matters to the resource model.
func (s *PhysicsSystem) Update(player *entity.Player, input InputState, level *entity.Level, res *entity.Resources, events *EventBuffer) PlayerOutcome {
	// Apply gravity
	player.VY += s.config.Gravity

	// Horizontal input
	s.handleMovement(player, input)

	// Jump
	s.handleJump(player, input)

	player.Integrate()

	// Platforms
	player.Grounded = false
	for _, p := range level.Platforms {
		if entity.CircleIntersectsRect(player.Circle(), p.Rect) {
			ResolveDominantAxis(player, p)
		}
	}

	// World bounds
	if s.applyBounds(player, level) {
		return PlayerFell
	}

	// Exit door
	if entity.CircleIntersectsRect(player.Circle(), level.End.Rect) {
		return PlayerReachedExit
	}

	s.collectPowerUps(player, level.PowerUps, res, events)

	return PlayerAlive
}

// handleMovement sets vx directly from input, or decays it without input.
func (s *PhysicsSystem) handleMovement(player *entity.Player, input InputState) {
	switch {
	case input.Left:
		player.VX = -s.config.MoveSpeed
	case input.Right:
		player.VX = s.config.MoveSpeed
	default:
		player.VX *= s.config.Friction
	}
}

// handleJump starts a jump from the ground. Holding up in the air does nothing.
func (s *PhysicsSystem) handleJump(player *entity.Player, input InputState) {
	if !input.Up || !player.Grounded || player.Jumping {
		return
	}
	player.VY = s.config.JumpForce
	player.Grounded = false
	player.Jumping = true
}

// applyBounds clamps the player horizontally and applies the level's fall
// policy at the bottom edge. Returns true when the player fell out.
func (s *PhysicsSystem) applyBounds(player *entity.Player, level *entity.Level) bool {
	r := player.Radius
	if player.X < r {
		player.X = r
		player.VX = 0
	} else if player.X > level.Width-r {
		player.X = level.Width - r
		player.VX = 0
	}

	if player.Y+r <= level.Height {
		return false
	}

	if level.FallPolicy == entity.FallDeath {
		return true
	}

	player.Y = level.Height - r
	player.VY = 0
	player.Grounded = true
	player.Jumping = false
	return false
}

// collectPowerUps applies every active power-up the player touches.
func (s *PhysicsSystem) collectPowerUps(player *entity.Player, powerUps []*entity.PowerUp, res *entity.Resources, events *EventBuffer) {
	for _, pu := range powerUps {
		if !pu.Active || !entity.CirclesIntersect(player.Circle(), pu.Circle()) {
			continue
		}

		switch pu.Kind {
		case entity.PowerUpHealth:
			res.Heal(s.pickups.HealthAmount)
		case entity.PowerUpEnergy:
			res.Recharge(s.pickups.EnergyAmount)
		}
		pu.Active = false
		events.Sound(CuePowerUp)
	}
}

// ResolveDominantAxis pushes the player out of one overlapping platform
// along a single axis: whichever component of the center-to-closest-point
// delta is larger. Ties resolve vertically. This is not a minimum
// translation vector; at corners the larger component wins outright.
//
// A landing (pushed up) grounds the player, ends the jump, zeroes vy and
// carries the player along with the platform.
func ResolveDominantAxis(player *entity.Player, p *entity.Platform) {
	cx, cy := p.ClosestPoint(player.X, player.Y)
	dx := player.X - cx
	dy := player.Y - cy

	if dx == 0 && dy == 0 {
		resolveEmbedded(player, p)
		return
	}

	r := player.Radius
	if math.Abs(dy) >= math.Abs(dx) {
		if dy < 0 {
			land(player, p)
		} else {
			player.Y = p.Bottom() + r
			if player.VY < 0 {
				player.VY = 0
			}
		}
		return
	}

	if dx < 0 {
		player.X = p.X - r
	} else {
		player.X = p.Right() + r
	}
	player.VX = 0
}

// resolveEmbedded handles a center that sits inside the platform, where the
// closest-point delta is zero. The player leaves through the nearest edge.
func resolveEmbedded(player *entity.Player, p *entity.Platform) {
	r := player.Radius
	top := player.Y - p.Y
	bottom := p.Bottom() - player.Y
	left := player.X - p.X
	right := p.Right() - player.X

	switch math.Min(math.Min(top, bottom), math.Min(left, right)) {
	case top:
		land(player, p)
	case bottom:
		player.Y = p.Bottom() + r
		if player.VY < 0 {
			player.VY = 0
		}
	case left:
		player.X = p.X - r
		player.VX = 0
	default:
		player.X = p.Right() + r
		player.VX = 0
	}
}

// land snaps the player onto the platform top. The top already holds this
// tick's vertical displacement, so only the horizontal one is carried.
func land(player *entity.Player, p *entity.Platform) {
	player.Y = p.Y - player.Radius
	player.Grounded = true
	player.Jumping = false
	player.VY = 0
	if p.Moving {
		player.X += p.DeltaX
	}
}
