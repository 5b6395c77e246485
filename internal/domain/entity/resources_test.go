package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResources(t *testing.T) {
	r := NewResources()

	assert.Equal(t, MaxGauge, r.Health)
	assert.Equal(t, MaxGauge, r.Energy)
	assert.False(t, r.Shield)
}

func TestResources_Clamp(t *testing.T) {
	r := NewResources()

	r.Heal(50)
	assert.Equal(t, 100.0, r.Health)

	r.Recharge(1000)
	assert.Equal(t, 100.0, r.Energy)

	r.Drain(250)
	assert.Equal(t, 0.0, r.Energy)

	depleted := r.Damage(30)
	assert.False(t, depleted)
	assert.Equal(t, 70.0, r.Health)

	depleted = r.Damage(500)
	assert.True(t, depleted)
	assert.Equal(t, 0.0, r.Health)
	assert.True(t, r.Depleted())
}
