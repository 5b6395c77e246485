package entity

import "fmt"

// DroneKind is the closed set of drone behaviors.
type DroneKind int

const (
	DronePatroller DroneKind = iota
	DroneVertical
	DroneChaser
	DroneTurret
	DroneBouncer
	DroneBoss
)

var droneKindNames = [...]string{
	DronePatroller: "patroller",
	DroneVertical:  "vertical",
	DroneChaser:    "chaser",
	DroneTurret:    "turret",
	DroneBouncer:   "bouncer",
	DroneBoss:      "boss",
}

// DroneKinds lists every behavior in declaration order.
func DroneKinds() []DroneKind {
	return []DroneKind{DronePatroller, DroneVertical, DroneChaser, DroneTurret, DroneBouncer, DroneBoss}
}

// String returns the level-file name of the kind.
func (k DroneKind) String() string {
	if k < 0 || int(k) >= len(droneKindNames) {
		return fmt.Sprintf("DroneKind(%d)", int(k))
	}
	return droneKindNames[k]
}

// ParseDroneKind maps a level-file name to its kind.
func ParseDroneKind(s string) (DroneKind, error) {
	for i, name := range droneKindNames {
		if name == s {
			return DroneKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown drone kind %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *DroneKind) UnmarshalText(text []byte) error {
	parsed, err := ParseDroneKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Drone is a hostile circle driven by one of the DroneKind behaviors.
type Drone struct {
	Body

	Kind DroneKind

	// Timer is free running and drives the periodic behavior switches.
	Timer int
	// ShootTimer counts ticks since the last shot attempt.
	ShootTimer  int
	ShootPeriod int

	// Boss health is shown on the HUD only; nothing decrements it.
	Health    float64
	MaxHealth float64
}

// NewDrone creates a drone at rest.
func NewDrone(kind DroneKind, x, y, radius float64, shootPeriod int) *Drone {
	return &Drone{
		Body: Body{
			X:      x,
			Y:      y,
			Radius: radius,
		},
		Kind:        kind,
		ShootPeriod: shootPeriod,
	}
}

// IsBoss returns true for the boss variant.
func (d *Drone) IsBoss() bool {
	return d.Kind == DroneBoss
}
