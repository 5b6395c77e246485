package entity

// Body is the kinematic part of a circular entity.
// Positions are world pixels, velocities are pixels per tick.
type Body struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Circle returns the body's collision circle.
func (b *Body) Circle() Circle {
	return Circle{X: b.X, Y: b.Y, Radius: b.Radius}
}

// Integrate advances the position by one tick of velocity.
func (b *Body) Integrate() {
	b.X += b.VX
	b.Y += b.VY
}

// Player is the player-controlled circle.
// Radius is fixed for the lifetime of a level.
type Player struct {
	Body

	// Grounded is recomputed from scratch every tick by the player controller.
	Grounded bool
	// Jumping gates re-triggering a jump while up is held in the air.
	Jumping bool
}

// NewPlayer creates a player resting at (x, y).
func NewPlayer(x, y, radius float64) *Player {
	return &Player{
		Body: Body{
			X:      x,
			Y:      y,
			Radius: radius,
		},
	}
}

// Respawn moves the player to (x, y) and clears motion state.
func (p *Player) Respawn(x, y float64) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
	p.Grounded = false
	p.Jumping = false
}
