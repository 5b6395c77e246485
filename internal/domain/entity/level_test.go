package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLevel() *Level {
	return &Level{
		Name:   "test",
		Width:  800,
		Height: 600,
		Start:  Door{Rect: Rect{X: 10, Y: 500, Width: 30, Height: 50}, Role: DoorStart},
		End:    Door{Rect: Rect{X: 700, Y: 500, Width: 30, Height: 50}, Role: DoorEnd},
		Platforms: []*Platform{
			NewStaticPlatform(0, 550, 800, 50),
			NewMovingPlatform(200, 400, 100, 20, AxisHorizontal, 2, 150, 350),
		},
		Drones:   []*Drone{NewDrone(DroneTurret, 400, 200, 12, 60)},
		PowerUps: []*PowerUp{NewPowerUp(PowerUpHealth, 300, 300, 10)},
	}
}

func TestLevel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *Level)
		wantErr bool
	}{
		{"valid", func(l *Level) {}, false},
		{"no name", func(l *Level) { l.Name = "" }, true},
		{"zero width", func(l *Level) { l.Width = 0 }, true},
		{"NaN height", func(l *Level) { l.Height = math.NaN() }, true},
		{"no end door", func(l *Level) { l.End = Door{} }, true},
		{"inverted bounds", func(l *Level) { l.Platforms[1].Min, l.Platforms[1].Max = 400, 100 }, true},
		{"start outside bounds", func(l *Level) { l.Platforms[1].X = 500 }, true},
		{"NaN platform", func(l *Level) { l.Platforms[0].Y = math.Inf(1) }, true},
		{"negative shoot period", func(l *Level) { l.Drones[0].ShootPeriod = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := createTestLevel()
			tt.mutate(l)
			err := l.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLevel_Clone(t *testing.T) {
	l := createTestLevel()
	l.Info = []string{"hello"}

	c := l.Clone()
	c.Platforms[1].X = 300
	c.Drones[0].Timer = 50
	c.PowerUps[0].Active = false
	c.Info[0] = "changed"

	assert.Equal(t, 200.0, l.Platforms[1].X)
	assert.Zero(t, l.Drones[0].Timer)
	assert.True(t, l.PowerUps[0].Active)
	assert.Equal(t, "hello", l.Info[0])
}

func TestPlatform_SetCoord(t *testing.T) {
	h := NewMovingPlatform(100, 50, 40, 10, AxisHorizontal, 1, 0, 200)
	h.SetCoord(103)
	assert.Equal(t, 103.0, h.Coord())
	assert.Equal(t, 3.0, h.DeltaX)
	assert.Zero(t, h.DeltaY)

	v := NewMovingPlatform(100, 50, 40, 10, AxisVertical, 1, 0, 200)
	v.SetCoord(48)
	assert.Equal(t, 48.0, v.Y)
	assert.Equal(t, 100.0, v.X)
	assert.Equal(t, -2.0, v.DeltaY)
}

func TestFallPolicy_Text(t *testing.T) {
	var f FallPolicy
	require.NoError(t, f.UnmarshalText([]byte("clamp")))
	assert.Equal(t, FallClamp, f)
	require.NoError(t, f.UnmarshalText([]byte("")))
	assert.Equal(t, FallDeath, f)
	assert.Error(t, f.UnmarshalText([]byte("bounce")))

	var a Axis
	require.NoError(t, a.UnmarshalText([]byte("vertical")))
	assert.Equal(t, AxisVertical, a)
	assert.Error(t, a.UnmarshalText([]byte("diagonal")))
}

func TestDoor_Center(t *testing.T) {
	d := Door{Rect: Rect{X: 10, Y: 20, Width: 30, Height: 40}}
	x, y := d.Center()
	assert.Equal(t, 25.0, x)
	assert.Equal(t, 40.0, y)
}
