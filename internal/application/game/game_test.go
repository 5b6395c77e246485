package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/dodgeball/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
	dts           []float64
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.dts = append(m.dts, dt)
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	// Create a dummy image for testing
	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := New(scene1, 320, 240)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	// First update triggers transition
	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	// Second update goes to scene2
	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil} // Returns nil, no transition

	g := New(scene1, 320, 240)

	// Multiple updates, no transition
	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	g := New(scene1, 320, 240)

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}

// fakeClock advances by a queued step on every read
type fakeClock struct {
	t     time.Time
	steps []time.Duration
}

func (c *fakeClock) now() time.Time {
	if len(c.steps) > 0 {
		c.t = c.t.Add(c.steps[0])
		c.steps = c.steps[1:]
	}
	return c.t
}

func TestGame_WallClockDT(t *testing.T) {
	tests := []struct {
		name     string
		steps    []time.Duration
		expected []float64
	}{
		{
			name:     "first frame is zero",
			steps:    []time.Duration{0},
			expected: []float64{0},
		},
		{
			name:     "measures elapsed time",
			steps:    []time.Duration{0, 16 * time.Millisecond, 20 * time.Millisecond},
			expected: []float64{0, 0.016, 0.02},
		},
		{
			name:     "clamps stalls",
			steps:    []time.Duration{0, 3 * time.Second},
			expected: []float64{0, DefaultMaxDT},
		},
		{
			name:     "clock going backwards is zero",
			steps:    []time.Duration{0, -time.Second},
			expected: []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockScene{}
			g := New(s, 320, 240)
			clock := &fakeClock{t: time.Unix(1000, 0), steps: tt.steps}
			g.SetClock(clock.now)

			for range tt.steps {
				assert.NoError(t, g.Update())
			}

			assert.Len(t, s.dts, len(tt.expected))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], s.dts[i], 1e-9)
			}
		})
	}
}

func TestGame_SetMaxDT(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240)
	g.SetMaxDT(0.05)
	clock := &fakeClock{t: time.Unix(0, 0), steps: []time.Duration{0, time.Second}}
	g.SetClock(clock.now)

	_ = g.Update()
	_ = g.Update()
	assert.Equal(t, []float64{0, 0.05}, s.dts)
}

func TestGame_SetDTBypassesClock(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240)
	g.SetClock(func() time.Time {
		t.Fatal("clock read with fixed dt")
		return time.Time{}
	})
	g.SetDT(1.0 / 60.0)

	_ = g.Update()
	_ = g.Update()
	assert.Equal(t, []float64{1.0 / 60.0, 1.0 / 60.0}, s.dts)
}
