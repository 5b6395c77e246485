package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/dodgeball/internal/domain/entity"
)

func createTestProjectileSystem() *ProjectileSystem {
	return NewProjectileSystem(&createTestTuning().Projectile)
}

func TestProjectileSystem_AgeCap(t *testing.T) {
	sys := createTestProjectileSystem()
	level := createTestLevel()
	player := entity.NewPlayer(100, 550, 15)
	res := entity.NewResources()
	var events EventBuffer

	projectiles := []*entity.Projectile{entity.NewDroneProjectile(100, 100, 3, 0, 5, "")}
	shot := projectiles[0]

	lastAge := 0
	removedAt := 0
	for tick := 1; tick <= 1000; tick++ {
		projectiles = sys.Update(projectiles, level, player, &res, &events)
		if len(projectiles) == 0 {
			removedAt = tick
			break
		}
		assert.Greater(t, shot.Age, lastAge)
		lastAge = shot.Age
		assert.LessOrEqual(t, shot.Age, 120)
	}

	assert.Equal(t, 121, removedAt)
	assert.Equal(t, 120, lastAge)
}

func TestProjectileSystem_Removal(t *testing.T) {
	tests := []struct {
		name       string
		proj       *entity.Projectile
		shield     bool
		wantKept   bool
		wantHealth float64
		wantEvents []Event
	}{
		{
			name:       "free flight",
			proj:       entity.NewDroneProjectile(500, 100, 3, 0, 5, ""),
			wantKept:   true,
			wantHealth: 100,
		},
		{
			name:       "leaves the world",
			proj:       entity.NewDroneProjectile(2, 100, -8, 0, 5, ""),
			wantHealth: 100,
		},
		{
			name:       "hits unshielded player",
			proj:       entity.NewDroneProjectile(185, 300, 3, 0, 5, ""),
			wantHealth: 95,
			wantEvents: []Event{SoundEvent{Cue: CueCollision}},
		},
		{
			name:       "shield absorbs",
			proj:       entity.NewDroneProjectile(185, 300, 3, 0, 5, ""),
			shield:     true,
			wantHealth: 100,
		},
		{
			name:       "hits platform",
			proj:       entity.NewDroneProjectile(1000, 395, 0, 3, 5, ""),
			wantHealth: 100,
		},
		{
			name:       "player is checked before platforms",
			proj:       entity.NewDroneProjectile(200, 318, 0, 0, 5, ""),
			wantHealth: 95,
			wantEvents: []Event{SoundEvent{Cue: CueCollision}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := createTestProjectileSystem()
			level := createTestLevel()
			level.Platforms = []*entity.Platform{
				entity.NewStaticPlatform(900, 400, 200, 20),
				entity.NewStaticPlatform(150, 320, 100, 20),
			}
			player := entity.NewPlayer(200, 300, 15)
			res := entity.NewResources()
			res.Shield = tt.shield
			var events EventBuffer

			kept := sys.Update([]*entity.Projectile{tt.proj}, level, player, &res, &events)

			if tt.wantKept {
				require.Len(t, kept, 1)
			} else {
				assert.Empty(t, kept)
			}
			assert.Equal(t, tt.wantHealth, res.Health)
			assert.Equal(t, tt.wantEvents, events.Flush())
		})
	}
}

func TestProjectileSystem_KeepsOrder(t *testing.T) {
	sys := createTestProjectileSystem()
	level := createTestLevel()
	player := entity.NewPlayer(2000, 550, 15)
	res := entity.NewResources()
	var events EventBuffer

	a := entity.NewDroneProjectile(100, 100, 1, 0, 5, "")
	gone := entity.NewDroneProjectile(1, 100, -10, 0, 5, "")
	b := entity.NewDroneProjectile(300, 100, 1, 0, 5, "")

	kept := sys.Update([]*entity.Projectile{a, gone, b}, level, player, &res, &events)

	assert.Equal(t, []*entity.Projectile{a, b}, kept)
}
