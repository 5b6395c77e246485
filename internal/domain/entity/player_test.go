package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(100, 200, 15)

	require.NotNil(t, p)
	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 200.0, p.Y)
	assert.Equal(t, 15.0, p.Radius)
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)
	assert.False(t, p.Grounded)
	assert.False(t, p.Jumping)
}

func TestBody_Integrate(t *testing.T) {
	b := Body{X: 10, Y: 10, VX: 2.5, VY: -1, Radius: 4}

	b.Integrate()

	assert.Equal(t, 12.5, b.X)
	assert.Equal(t, 9.0, b.Y)
	assert.Equal(t, Circle{X: 12.5, Y: 9, Radius: 4}, b.Circle())
}

func TestPlayer_Respawn(t *testing.T) {
	p := NewPlayer(0, 0, 15)
	p.VX, p.VY = 5, -3
	p.Grounded = true
	p.Jumping = true

	p.Respawn(40, 50)

	assert.Equal(t, 40.0, p.X)
	assert.Equal(t, 50.0, p.Y)
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)
	assert.False(t, p.Grounded)
	assert.False(t, p.Jumping)
	assert.Equal(t, 15.0, p.Radius)
}
