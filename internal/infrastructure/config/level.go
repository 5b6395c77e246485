package config

// CampaignConfig is the root config for campaign.yaml
type CampaignConfig struct {
	Title  string   `yaml:"title"`
	Levels []string `yaml:"levels"`
}

// LevelConfig is the root config for levels/<name>.yaml
type LevelConfig struct {
	Name       string               `yaml:"name"`
	Title      string               `yaml:"title"`
	Info       []string             `yaml:"info"`
	Music      string               `yaml:"music"`
	World      WorldConfig          `yaml:"world"`
	FallPolicy string               `yaml:"fallPolicy"` // death | clamp
	Start      RectConfig           `yaml:"start"`
	End        RectConfig           `yaml:"end"`
	Platforms  []PlatformConfig     `yaml:"platforms"`
	Drones     []DroneSpawnConfig   `yaml:"drones"`
	PowerUps   []PowerUpSpawnConfig `yaml:"powerUps"`
	Rules      *RulesConfig         `yaml:"rules"`
}

type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlatformConfig struct {
	RectConfig `yaml:",inline"`

	Moving *MovingConfig `yaml:"moving"` // nil for static platforms
}

// MovingConfig makes a platform oscillate between Min and Max on Axis.
type MovingConfig struct {
	Axis  string  `yaml:"axis"` // horizontal | vertical
	Speed float64 `yaml:"speed"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

type DroneSpawnConfig struct {
	Kind        string  `yaml:"kind"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	VX          float64 `yaml:"vx"`
	VY          float64 `yaml:"vy"`
	Radius      float64 `yaml:"radius"`      // 0 uses tuning default
	ShootPeriod int     `yaml:"shootPeriod"` // 0 uses tuning default
}

type PowerUpSpawnConfig struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// RulesConfig overrides tuning values for one level. Nil fields keep the tuning value.
type RulesConfig struct {
	DrainRate        *float64 `yaml:"drainRate"`
	RegenRate        *float64 `yaml:"regenRate"`
	PenaltyRate      *float64 `yaml:"penaltyRate"`
	ContactDamage    *float64 `yaml:"contactDamage"`
	ProjectileDamage *float64 `yaml:"projectileDamage"`
	ShootRange       *float64 `yaml:"shootRange"`
}
