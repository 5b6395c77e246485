package entity

import "fmt"

// PowerUpKind is the resource a power-up restores.
type PowerUpKind int

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpEnergy
)

// String returns the level-file name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "health"
	case PowerUpEnergy:
		return "energy"
	default:
		return fmt.Sprintf("PowerUpKind(%d)", int(k))
	}
}

// UnmarshalText parses "health" or "energy".
func (k *PowerUpKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "health":
		*k = PowerUpHealth
	case "energy":
		*k = PowerUpEnergy
	default:
		return fmt.Errorf("unknown power-up kind %q", string(text))
	}
	return nil
}

// PowerUp is a one-shot pickup. Once Active is false it stays false
// until the level is reloaded.
type PowerUp struct {
	X, Y   float64
	Radius float64
	Kind   PowerUpKind
	Active bool
}

// NewPowerUp creates an active power-up.
func NewPowerUp(kind PowerUpKind, x, y, radius float64) *PowerUp {
	return &PowerUp{
		X:      x,
		Y:      y,
		Radius: radius,
		Kind:   kind,
		Active: true,
	}
}

// Circle returns the pickup circle.
func (p *PowerUp) Circle() Circle {
	return Circle{X: p.X, Y: p.Y, Radius: p.Radius}
}
