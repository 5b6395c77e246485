package system

import (
	"github.com/younwookim/dodgeball/internal/domain/entity"
	"github.com/younwookim/dodgeball/internal/infrastructure/config"
)

// Outcome is the state of a level run.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWin
	OutcomeGameOver
)

// String returns a short label for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeGameOver:
		return "gameover"
	default:
		return "running"
	}
}

// Cause says why a run ended in game over.
type Cause int

const (
	CauseNone Cause = iota
	CauseHealth
	CauseFall
)

// String returns a short label for logs.
func (c Cause) String() string {
	switch c {
	case CauseHealth:
		return "health"
	case CauseFall:
		return "fall"
	default:
		return "none"
	}
}

// StepResult is what one tick produced.
type StepResult struct {
	Outcome Outcome
	Cause   Cause
	Events  []Event
}

// Simulation owns every entity of one level and advances them in a fixed
// order: resources, platforms, player, drones, projectiles. A level-ending
// condition returns immediately; later stages of that tick do not run.
type Simulation struct {
	tuning   *config.TuningConfig
	template *entity.Level
	rng      Source

	level       *entity.Level
	player      *entity.Player
	resources   entity.Resources
	projectiles []*entity.Projectile
	tick        int
	outcome     Outcome
	cause       Cause

	resourceSystem   *ResourceSystem
	platformSystem   *PlatformSystem
	physicsSystem    *PhysicsSystem
	droneSystem      *DroneSystem
	projectileSystem *ProjectileSystem

	events EventBuffer
}

// NewSimulation creates a simulation of level. The level is cloned, so the
// caller's copy is never mutated. tuning should already carry the level's
// rule overrides.
func NewSimulation(tuning *config.TuningConfig, level *entity.Level, rng Source) *Simulation {
	s := &Simulation{
		tuning:           tuning,
		template:         level,
		rng:              rng,
		resourceSystem:   NewResourceSystem(&tuning.Resources),
		platformSystem:   NewPlatformSystem(),
		physicsSystem:    NewPhysicsSystem(&tuning.Player, &tuning.PowerUp),
		droneSystem:      NewDroneSystem(tuning, rng),
		projectileSystem: NewProjectileSystem(&tuning.Projectile),
	}
	s.Reset()
	return s
}

// Reset restores the level to its loaded state and queues the level music.
func (s *Simulation) Reset() {
	s.level = s.template.Clone()
	x, y := s.level.Start.Center()
	s.player = entity.NewPlayer(x, y, s.tuning.Player.Radius)
	s.resources = entity.NewResources()
	s.projectiles = nil
	s.tick = 0
	s.outcome = OutcomeRunning
	s.cause = CauseNone
	s.events.Flush()
	if s.level.Music != "" {
		s.events.Emit(MusicEvent{Track: s.level.Music})
	}
}

// Step advances one tick. dt is wall-clock seconds since the previous tick,
// clamped to [0, maxDt]; it only scales the resource rates. After the run
// has ended Step does nothing and keeps reporting the outcome.
func (s *Simulation) Step(input InputState, dt float64) StepResult {
	if s.outcome != OutcomeRunning {
		return StepResult{Outcome: s.outcome, Cause: s.cause}
	}

	dt = s.clampDT(dt)
	s.tick++

	// Resources
	if s.resourceSystem.Update(&s.resources, input.Shield, dt) {
		return s.finish(OutcomeGameOver, CauseHealth)
	}

	// Platforms
	s.platformSystem.Update(s.level.Platforms)

	// Player
	switch s.physicsSystem.Update(s.player, input, s.level, &s.resources, &s.events) {
	case PlayerFell:
		return s.finish(OutcomeGameOver, CauseFall)
	case PlayerReachedExit:
		return s.finish(OutcomeWin, CauseNone)
	}

	// Drones
	s.projectiles = s.droneSystem.Update(s.level, s.player, &s.resources, s.projectiles, &s.events)
	if s.resources.Depleted() {
		return s.finish(OutcomeGameOver, CauseHealth)
	}

	// Projectiles
	s.projectiles = s.projectileSystem.Update(s.projectiles, s.level, s.player, &s.resources, &s.events)
	if s.resources.Depleted() {
		return s.finish(OutcomeGameOver, CauseHealth)
	}

	return StepResult{Outcome: OutcomeRunning, Events: s.events.Flush()}
}

func (s *Simulation) clampDT(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if maxDT := s.tuning.Loop.MaxDT; maxDT > 0 && dt > maxDT {
		return maxDT
	}
	return dt
}

func (s *Simulation) finish(outcome Outcome, cause Cause) StepResult {
	s.outcome = outcome
	s.cause = cause
	if outcome == OutcomeGameOver {
		s.events.Sound(CueExplosion)
	}
	return StepResult{Outcome: outcome, Cause: cause, Events: s.events.Flush()}
}

// Outcome returns the current run state.
func (s *Simulation) Outcome() Outcome {
	return s.outcome
}

// Tick returns the number of ticks stepped since the last reset.
func (s *Simulation) Tick() int {
	return s.tick
}

// Level returns the live level. Callers must not mutate it.
func (s *Simulation) Level() *entity.Level {
	return s.level
}

// Player returns the live player. Callers must not mutate it.
func (s *Simulation) Player() *entity.Player {
	return s.player
}

// Resources returns a copy of the gauges.
func (s *Simulation) Resources() entity.Resources {
	return s.resources
}

// Projectiles returns the live projectiles. Callers must not mutate them.
func (s *Simulation) Projectiles() []*entity.Projectile {
	return s.projectiles
}
