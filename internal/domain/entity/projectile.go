package entity

// ProjectileSource identifies who fired a projectile.
type ProjectileSource int

const (
	SourceDrone ProjectileSource = iota
)

// String returns the source tag.
func (s ProjectileSource) String() string {
	switch s {
	case SourceDrone:
		return "drone"
	default:
		return "unknown"
	}
}

// Projectile is a straight-line shot. It has no gravity; velocity is
// fixed at spawn.
type Projectile struct {
	Body

	// Age counts ticks since spawn.
	Age    int
	Source ProjectileSource
	// Color is a colornames key; cosmetic only.
	Color string
}

// NewDroneProjectile creates a drone shot at (x, y) moving at (vx, vy).
func NewDroneProjectile(x, y, vx, vy, radius float64, color string) *Projectile {
	return &Projectile{
		Body: Body{
			X:      x,
			Y:      y,
			VX:     vx,
			VY:     vy,
			Radius: radius,
		},
		Source: SourceDrone,
		Color:  color,
	}
}

// OutOfBounds reports whether the projectile has fully left a world of the
// given size, allowing one radius of margin on every side.
func (p *Projectile) OutOfBounds(width, height float64) bool {
	return p.X < -p.Radius || p.X > width+p.Radius ||
		p.Y < -p.Radius || p.Y > height+p.Radius
}
