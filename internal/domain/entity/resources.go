package entity

// MaxGauge is the upper bound of both health and energy.
const MaxGauge = 100.0

// Resources holds the player's health and energy gauges and the derived
// shield flag. Health and Energy stay within [0, MaxGauge].
type Resources struct {
	Health float64
	Energy float64
	Shield bool
}

// NewResources returns full gauges with the shield down.
func NewResources() Resources {
	return Resources{Health: MaxGauge, Energy: MaxGauge}
}

// Damage subtracts amount from health, flooring at zero.
// Returns true when health is depleted.
func (r *Resources) Damage(amount float64) bool {
	r.Health = clampF(r.Health-amount, 0, MaxGauge)
	return r.Health <= 0
}

// Heal adds amount to health, capped at MaxGauge.
func (r *Resources) Heal(amount float64) {
	r.Health = clampF(r.Health+amount, 0, MaxGauge)
}

// Recharge adds amount to energy, capped at MaxGauge.
func (r *Resources) Recharge(amount float64) {
	r.Energy = clampF(r.Energy+amount, 0, MaxGauge)
}

// Drain subtracts amount from energy, flooring at zero.
func (r *Resources) Drain(amount float64) {
	r.Energy = clampF(r.Energy-amount, 0, MaxGauge)
}

// Depleted reports whether health has reached zero.
func (r *Resources) Depleted() bool {
	return r.Health <= 0
}
