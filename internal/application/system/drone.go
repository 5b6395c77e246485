package system

import (
	"fmt"
	"math"

	"github.com/younwookim/dodgeball/internal/domain/entity"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

// DroneSystem runs drone behaviors, shooting and player contact.
type DroneSystem struct {
	drone      *config.DroneConfig
	boss       *config.BossConfig
	projectile *config.ProjectileConfig
	rng        Source
}

// NewDroneSystem creates a new drone system
func NewDroneSystem(cfg *config.TuningConfig, rng Source) *DroneSystem {
	return &DroneSystem{
		drone:      &cfg.Drone,
		boss:       &cfg.Boss,
		projectile: &cfg.Projectile,
		rng:        rng,
	}
}

// Update advances every drone by one tick and returns projectiles with any
// new shots appended.
func (s *DroneSystem) Update(level *entity.Level, player *entity.Player, res *entity.Resources, projectiles []*entity.Projectile, events *EventBuffer) []*entity.Projectile {
	for _, d := range level.Drones {
		d.Timer++
		d.ShootTimer++

		if d.ShootTimer > d.ShootPeriod {
			d.ShootTimer = 0
			if shot := s.shoot(d, player); shot != nil {
				projectiles = append(projectiles, shot)
				events.Sound(CueShoot)
			}
		}

		d.VX, d.VY = s.velocity(d, player)
		d.Integrate()
		bounceWorld(d, level)

		s.contact(d, player, res, events)
		bouncePlatforms(d, level.Platforms)
	}
	return projectiles
}

// shoot fires at the player when in range. The aim is the unit vector to the
// player plus independent per-axis jitter; the boss aims tighter and shoots
// faster.
func (s *DroneSystem) shoot(d *entity.Drone, player *entity.Player) *entity.Projectile {
	nx, ny, dist := entity.Normalize(player.X-d.X, player.Y-d.Y)
	if dist >= s.drone.ShootRange {
		return nil
	}

	jitter, speed, color := s.drone.Jitter, s.projectile.Speed, s.projectile.Color
	if d.IsBoss() {
		jitter, speed, color = s.boss.Jitter, s.projectile.BossSpeed, s.projectile.BossColor
	}

	vx := (nx + uniform(s.rng, -jitter, jitter)) * speed
	vy := (ny + uniform(s.rng, -jitter, jitter)) * speed
	return entity.NewDroneProjectile(d.X, d.Y, vx, vy, s.projectile.Radius, color)
}

// velocity returns the drone's velocity for this tick. Every DroneKind has
// exactly one case.
func (s *DroneSystem) velocity(d *entity.Drone, player *entity.Player) (float64, float64) {
	switch d.Kind {
	case entity.DronePatroller:
		return s.patrol(d)
	case entity.DroneVertical:
		return s.vertical(d)
	case entity.DroneChaser:
		return s.chase(d, player)
	case entity.DroneTurret:
		return 0, 0
	case entity.DroneBouncer:
		return s.bounce(d)
	case entity.DroneBoss:
		return s.bossMove(d, player)
	}
	panic(fmt.Sprintf("unhandled drone kind %v", d.Kind))
}

func (s *DroneSystem) patrol(d *entity.Drone) (float64, float64) {
	if every(d.Timer, s.drone.PatrolFlipPeriod) {
		return -d.VX, d.VY
	}
	return d.VX, d.VY
}

func (s *DroneSystem) vertical(d *entity.Drone) (float64, float64) {
	if every(d.Timer, s.drone.VerticalFlipPeriod) {
		return d.VX, -d.VY
	}
	return d.VX, d.VY
}

func (s *DroneSystem) chase(d *entity.Drone, player *entity.Player) (float64, float64) {
	nx, ny, dist := entity.Normalize(player.X-d.X, player.Y-d.Y)
	if dist < s.drone.ChaseRange {
		return nx * s.drone.ChaseSpeed, ny * s.drone.ChaseSpeed
	}
	if every(d.Timer, s.drone.WanderPeriod) {
		w := s.drone.WanderSpeed
		return uniform(s.rng, -w, w), uniform(s.rng, -w, w)
	}
	return d.VX, d.VY
}

func (s *DroneSystem) bounce(d *entity.Drone) (float64, float64) {
	if every(d.Timer, s.drone.BouncePeriod) {
		b := s.drone.BounceSpeed
		return uniform(s.rng, -b, b), uniform(s.rng, -b, b)
	}
	return d.VX, d.VY
}

// bossMove cycles through circling, charging the player and retreating.
func (s *DroneSystem) bossMove(d *entity.Drone, player *entity.Player) (float64, float64) {
	cycle := s.boss.Cycle
	if cycle <= 0 {
		cycle = 1
	}
	phase := d.Timer % cycle

	switch {
	case phase < s.boss.CircleEnd:
		angle := float64(d.Timer) * s.boss.AngleRate
		return math.Cos(angle) * s.boss.CircleSpeed, math.Sin(angle) * s.boss.CircleSpeed
	case phase < s.boss.ChargeEnd:
		nx, ny, _ := entity.Normalize(player.X-d.X, player.Y-d.Y)
		return nx * s.boss.ChargeSpeed, ny * s.boss.ChargeSpeed
	default:
		nx, ny, _ := entity.Normalize(player.X-d.X, player.Y-d.Y)
		return -nx * s.boss.RetreatSpeed, -ny * s.boss.RetreatSpeed
	}
}

// contact damages and knocks back an unshielded player touching the drone.
// Knockback replaces the player's velocity.
func (s *DroneSystem) contact(d *entity.Drone, player *entity.Player, res *entity.Resources, events *EventBuffer) {
	if res.Shield || !entity.CirclesIntersect(d.Circle(), player.Circle()) {
		return
	}

	res.Damage(s.drone.ContactDamage)

	nx, ny, dist := entity.Normalize(player.X-d.X, player.Y-d.Y)
	if dist == 0 {
		nx, ny = 0, -1
	}
	player.VX = nx * s.drone.Knockback
	player.VY = ny * s.drone.Knockback
	events.Sound(CueCollision)
}

// bounceWorld points velocity back inside the world on any edge the drone
// has crossed. Position is not corrected.
func bounceWorld(d *entity.Drone, level *entity.Level) {
	r := d.Radius
	if d.X < r {
		d.VX = math.Abs(d.VX)
	} else if d.X > level.Width-r {
		d.VX = -math.Abs(d.VX)
	}
	if d.Y < r {
		d.VY = math.Abs(d.VY)
	} else if d.Y > level.Height-r {
		d.VY = -math.Abs(d.VY)
	}
}

// bouncePlatforms flips the larger velocity component on the first platform
// the drone overlaps.
func bouncePlatforms(d *entity.Drone, platforms []*entity.Platform) {
	for _, p := range platforms {
		if !entity.CircleIntersectsRect(d.Circle(), p.Rect) {
			continue
		}
		if math.Abs(d.VX) > math.Abs(d.VY) {
			d.VX = -d.VX
		} else {
			d.VY = -d.VY
		}
		return
	}
}

func every(timer, period int) bool {
	return period > 0 && timer%period == 0
}
