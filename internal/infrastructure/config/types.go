package config

// TuningConfig is the root config for tuning.json
type TuningConfig struct {
	Display    DisplayConfig    `json:"display"`
	Loop       LoopConfig       `json:"loop"`
	Player     PlayerConfig     `json:"player"`
	Resources  ResourceConfig   `json:"resources"`
	Drone      DroneConfig      `json:"drone"`
	Boss       BossConfig       `json:"boss"`
	Projectile ProjectileConfig `json:"projectile"`
	PowerUp    PowerUpConfig    `json:"powerUp"`
	Audio      AudioConfig      `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Title        string `json:"title"`
	Background   string `json:"background"` // colornames key
}

// LoopConfig controls frame timing and scene transitions.
type LoopConfig struct {
	MaxDT           float64 `json:"maxDt"`           // Upper clamp on frame delta (seconds)
	TransitionDelay float64 `json:"transitionDelay"` // Delay after win/lose (seconds)
}

// PlayerConfig holds per-tick player physics. Velocities are pixels per tick.
type PlayerConfig struct {
	Radius    float64 `json:"radius"`
	Gravity   float64 `json:"gravity"`
	Friction  float64 `json:"friction"`
	MoveSpeed float64 `json:"moveSpeed"`
	JumpForce float64 `json:"jumpForce"` // Negative is up
}

// ResourceConfig holds the shield/energy/health rates, per second.
type ResourceConfig struct {
	DrainRate   float64 `json:"drainRate"`
	RegenRate   float64 `json:"regenRate"`
	PenaltyRate float64 `json:"penaltyRate"`
}

type AudioConfig struct {
	SampleRate   int     `json:"sampleRate"`
	MasterVolume float64 `json:"masterVolume"`
	MusicVolume  float64 `json:"musicVolume"`
	SoundVolume  float64 `json:"soundVolume"`
}

// WithRules returns a copy of the tuning with level overrides applied.
// A nil rules value returns the receiver unchanged.
func (t *TuningConfig) WithRules(r *RulesConfig) *TuningConfig {
	if r == nil {
		return t
	}
	c := *t
	if r.DrainRate != nil {
		c.Resources.DrainRate = *r.DrainRate
	}
	if r.RegenRate != nil {
		c.Resources.RegenRate = *r.RegenRate
	}
	if r.PenaltyRate != nil {
		c.Resources.PenaltyRate = *r.PenaltyRate
	}
	if r.ContactDamage != nil {
		c.Drone.ContactDamage = *r.ContactDamage
	}
	if r.ProjectileDamage != nil {
		c.Projectile.Damage = *r.ProjectileDamage
	}
	if r.ShootRange != nil {
		c.Drone.ShootRange = *r.ShootRange
	}
	return &c
}
