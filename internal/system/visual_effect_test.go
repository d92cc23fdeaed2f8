package system

import (
	"testing"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplosionRadiusEnvelope(t *testing.T) {
	const max = 46.0
	assert.Equal(t, 0.0, ExplosionRadius(0, 60, max))
	assert.Equal(t, max, ExplosionRadius(30, 60, max))
	assert.InDelta(t, 0.0, ExplosionRadius(60, 60, max), 1e-9)
	assert.InDelta(t, max/2, ExplosionRadius(15, 60, max), 1e-9)
	assert.InDelta(t, max/2, ExplosionRadius(45, 60, max), 1e-9)

	for life := 0; life <= 60; life++ {
		r := ExplosionRadius(life, 60, max)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, max)
		assert.InDelta(t, r, ExplosionRadius(60-life, 60, max), 1e-9, "symmetric at life %d", life)
		if life > 0 && life <= 30 {
			assert.Greater(t, r, ExplosionRadius(life-1, 60, max))
		}
		if life > 30 {
			assert.Less(t, r, ExplosionRadius(life-1, 60, max))
		}
	}
}

func TestExplosionRadiusDegenerateLife(t *testing.T) {
	assert.Zero(t, ExplosionRadius(5, 0, 46))
}

func TestExplosionLifecycle(t *testing.T) {
	w, d, _ := playingWorld()
	e := addExplosionAt(w, component.Position{X: 400, Y: 300}, 0)
	s := NewExplosionSystem(w, d)

	for i := 1; i < config.ExplosionDuration; i++ {
		s.Update()
		require.Len(t, w.Explosions, 1)
		assert.Equal(t, i, e.Life)
		assert.Equal(t, ExplosionRadius(i, 60, 46), e.Radius)
	}
	s.Update()
	assert.Empty(t, w.Explosions, "removed once life reaches maxLife")
}

func TestExplosionDestroysRocketsInsideRadius(t *testing.T) {
	w, d, log := playingWorld()
	center := component.Position{X: 400, Y: 300}
	addExplosionAt(w, center, 29) // после шага life = 30, радиус 46
	inside := addRocket(w, component.Position{X: 440, Y: 300}, component.Position{}, 1, 0)
	edge := addRocket(w, component.Position{X: 400, Y: 346}, component.Position{}, 1, 0)
	outside := addRocket(w, component.Position{X: 400, Y: 360}, component.Position{}, 1, 0)

	NewExplosionSystem(w, d).Update()

	assert.NotContains(t, w.Rockets, inside)
	assert.Contains(t, w.Rockets, edge, "distance equal to radius is not inside")
	assert.Contains(t, w.Rockets, outside)
	assert.Equal(t, config.PointsPerRocket, w.Score)
	require.Equal(t, 1, log.count(event.RocketDestroyed))
	kill := log.events[0].Data.(event.KillData)
	assert.Equal(t, inside.ID, kill.RocketID)
	assert.Equal(t, 20, kill.Points)
}

func TestRocketCountedOnceWithOverlappingExplosions(t *testing.T) {
	w, d, log := playingWorld()
	addExplosionAt(w, component.Position{X: 400, Y: 300}, 29)
	addExplosionAt(w, component.Position{X: 410, Y: 300}, 29)
	addRocket(w, component.Position{X: 405, Y: 300}, component.Position{}, 1, 0)
	addRocket(w, component.Position{X: 395, Y: 310}, component.Position{}, 1, 0)

	NewExplosionSystem(w, d).Update()

	assert.Empty(t, w.Rockets)
	assert.Equal(t, 2*config.PointsPerRocket, w.Score)
	assert.Equal(t, 2, log.count(event.RocketDestroyed))
}

func TestFreshExplosionDoesNotKillAtLifeZero(t *testing.T) {
	w, d, _ := playingWorld()
	center := component.Position{X: 400, Y: 300}
	addExplosionAt(w, center, 0)
	// После шага life = 1, радиус 46/30 ~ 1.53.
	near := addRocket(w, component.Position{X: 401, Y: 300}, component.Position{}, 1, 0)
	far := addRocket(w, component.Position{X: 402, Y: 300}, component.Position{}, 1, 0)

	NewExplosionSystem(w, d).Update()

	assert.NotContains(t, w.Rockets, near)
	assert.Contains(t, w.Rockets, far)
}

func TestScoreNeverDecreases(t *testing.T) {
	w, d, _ := playingWorld()
	s := NewExplosionSystem(w, d)
	addExplosionAt(w, component.Position{X: 200, Y: 200}, 0)
	prev := 0
	for i := 0; i < 80; i++ {
		addRocket(w, component.Position{X: 200 + float64(i%40), Y: 200}, component.Position{}, 1, 0)
		s.Update()
		assert.GreaterOrEqual(t, w.Score, prev)
		assert.Zero(t, (w.Score-prev)%config.PointsPerRocket)
		prev = w.Score
	}
}
