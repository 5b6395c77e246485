package entity

import (
	"errors"
	"fmt"
	"math"
)

// Axis is the oscillation axis of a moving platform.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns the axis name used in level files.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// UnmarshalText parses "horizontal" or "vertical".
func (a *Axis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "horizontal", "":
		*a = AxisHorizontal
	case "vertical":
		*a = AxisVertical
	default:
		return fmt.Errorf("unknown axis %q", string(text))
	}
	return nil
}

// Platform is an axis-aligned solid rectangle. Moving platforms oscillate
// along Axis between Min and Max (inclusive) at Speed pixels per tick.
type Platform struct {
	Rect

	Moving bool
	Axis   Axis
	Dir    float64 // +1 or -1
	Speed  float64
	Min    float64
	Max    float64

	// Displacement applied during the last tick, used to carry a rider.
	DeltaX, DeltaY float64
}

// NewStaticPlatform creates a platform that never moves.
func NewStaticPlatform(x, y, w, h float64) *Platform {
	return &Platform{Rect: Rect{X: x, Y: y, Width: w, Height: h}}
}

// NewMovingPlatform creates an oscillating platform heading in the positive direction.
func NewMovingPlatform(x, y, w, h float64, axis Axis, speed, lo, hi float64) *Platform {
	return &Platform{
		Rect:   Rect{X: x, Y: y, Width: w, Height: h},
		Moving: true,
		Axis:   axis,
		Dir:    1,
		Speed:  speed,
		Min:    lo,
		Max:    hi,
	}
}

// Coord returns the oscillating coordinate.
func (p *Platform) Coord() float64 {
	if p.Axis == AxisVertical {
		return p.Y
	}
	return p.X
}

// SetCoord moves the platform along its axis and records the displacement.
func (p *Platform) SetCoord(v float64) {
	if p.Axis == AxisVertical {
		p.DeltaX, p.DeltaY = 0, v-p.Y
		p.Y = v
		return
	}
	p.DeltaX, p.DeltaY = v-p.X, 0
	p.X = v
}

// DoorRole tags a door as the spawn point or the exit.
type DoorRole int

const (
	DoorStart DoorRole = iota
	DoorEnd
)

// Door is an immutable rectangle with a role.
type Door struct {
	Rect
	Role DoorRole
}

// Center returns the center of the door rectangle.
func (d Door) Center() (float64, float64) {
	return d.X + d.Width/2, d.Y + d.Height/2
}

// FallPolicy decides what happens when the player drops below the world.
type FallPolicy int

const (
	// FallDeath ends the level as soon as the player's lower edge leaves the world.
	FallDeath FallPolicy = iota
	// FallClamp treats the bottom of the world as ground.
	FallClamp
)

// String returns the policy name used in level files.
func (f FallPolicy) String() string {
	if f == FallClamp {
		return "clamp"
	}
	return "death"
}

// UnmarshalText parses "death" or "clamp". Empty means death.
func (f *FallPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "death", "":
		*f = FallDeath
	case "clamp":
		*f = FallClamp
	default:
		return fmt.Errorf("unknown fall policy %q", string(text))
	}
	return nil
}

// Level is the live world of one stage: geometry plus every entity
// collection the simulation owns while the level is played.
type Level struct {
	Name       string
	Title      string
	Info       []string
	Music      string
	Width      float64
	Height     float64
	FallPolicy FallPolicy

	Start Door
	End   Door

	Platforms []*Platform
	Drones    []*Drone
	PowerUps  []*PowerUp
}

// HasInfo reports whether the level has a narrative screen before play.
func (l *Level) HasInfo() bool {
	return len(l.Info) > 0
}

// Validate rejects level data the simulation cannot run.
func (l *Level) Validate() error {
	if l.Name == "" {
		return errors.New("level has no name")
	}
	if !(l.Width > 0) || !(l.Height > 0) {
		return fmt.Errorf("level %s: world size must be positive, got %vx%v", l.Name, l.Width, l.Height)
	}
	if l.End.Role != DoorEnd || l.End.Width <= 0 || l.End.Height <= 0 {
		return fmt.Errorf("level %s: missing end door", l.Name)
	}
	for i, p := range l.Platforms {
		if !finite(p.X, p.Y, p.Width, p.Height) {
			return fmt.Errorf("level %s: platform %d has non-finite geometry", l.Name, i)
		}
		if p.Moving {
			if p.Min > p.Max {
				return fmt.Errorf("level %s: platform %d bounds inverted (%v > %v)", l.Name, i, p.Min, p.Max)
			}
			if c := p.Coord(); c < p.Min || c > p.Max {
				return fmt.Errorf("level %s: platform %d starts at %v outside [%v, %v]", l.Name, i, c, p.Min, p.Max)
			}
		}
	}
	for i, d := range l.Drones {
		if d.ShootPeriod < 0 {
			return fmt.Errorf("level %s: drone %d has negative shoot period", l.Name, i)
		}
	}
	return nil
}

// Clone returns a deep copy so a level template can be replayed from scratch.
func (l *Level) Clone() *Level {
	c := *l
	c.Info = append([]string(nil), l.Info...)
	c.Platforms = make([]*Platform, len(l.Platforms))
	for i, p := range l.Platforms {
		cp := *p
		c.Platforms[i] = &cp
	}
	c.Drones = make([]*Drone, len(l.Drones))
	for i, d := range l.Drones {
		cp := *d
		c.Drones[i] = &cp
	}
	c.PowerUps = make([]*PowerUp, len(l.PowerUps))
	for i, p := range l.PowerUps {
		cp := *p
		c.PowerUps[i] = &cp
	}
	return &c
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
