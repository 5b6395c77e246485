package config

// DroneConfig holds shared drone behavior constants. Periods are in ticks,
// speeds in pixels per tick.
type DroneConfig struct {
	Radius        float64 `json:"radius"`
	ShootPeriod   int     `json:"shootPeriod"`
	ShootRange    float64 `json:"shootRange"`
	Jitter        float64 `json:"jitter"` // Per-axis aim noise on the unit vector
	ContactDamage float64 `json:"contactDamage"`
	Knockback     float64 `json:"knockback"`

	PatrolFlipPeriod   int     `json:"patrolFlipPeriod"`
	VerticalFlipPeriod int     `json:"verticalFlipPeriod"`
	ChaseRange         float64 `json:"chaseRange"`
	ChaseSpeed         float64 `json:"chaseSpeed"`
	WanderPeriod       int     `json:"wanderPeriod"`
	WanderSpeed        float64 `json:"wanderSpeed"`
	BouncePeriod       int     `json:"bouncePeriod"`
	BounceSpeed        float64 `json:"bounceSpeed"`
}

// BossConfig holds the boss cycle: circle, then charge, then retreat.
type BossConfig struct {
	Radius       float64 `json:"radius"`
	Health       float64 `json:"health"`
	Jitter       float64 `json:"jitter"`
	Cycle        int     `json:"cycle"`
	CircleEnd    int     `json:"circleEnd"` // Phase ticks [0, CircleEnd) circle
	ChargeEnd    int     `json:"chargeEnd"` // [CircleEnd, ChargeEnd) charge, rest retreat
	AngleRate    float64 `json:"angleRate"` // Radians per tick of Timer
	CircleSpeed  float64 `json:"circleSpeed"`
	ChargeSpeed  float64 `json:"chargeSpeed"`
	RetreatSpeed float64 `json:"retreatSpeed"`
}

type ProjectileConfig struct {
	Speed     float64 `json:"speed"`
	BossSpeed float64 `json:"bossSpeed"`
	Radius    float64 `json:"radius"`
	MaxAge    int     `json:"maxAge"` // Ticks
	Damage    float64 `json:"damage"`
	Color     string  `json:"color"`
	BossColor string  `json:"bossColor"`
}

type PowerUpConfig struct {
	Radius       float64 `json:"radius"`
	HealthAmount float64 `json:"healthAmount"`
	EnergyAmount float64 `json:"energyAmount"`
}
