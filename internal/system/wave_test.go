package system

import (
	"math"
	"testing"
	"time"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 2000 * time.Millisecond},
		{99, 2000 * time.Millisecond},
		{100, 1900 * time.Millisecond},
		{560, 1500 * time.Millisecond},
		{1000, 1000 * time.Millisecond},
		{1500, 500 * time.Millisecond},
		{4000, 500 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpawnInterval(tt.score), "score %d", tt.score)
	}
}

func TestSpawnIntervalIsMonotonic(t *testing.T) {
	prev := SpawnInterval(0)
	for score := 0; score <= 3000; score += config.PointsPerRocket {
		cur := SpawnInterval(score)
		assert.LessOrEqual(t, cur, prev)
		assert.GreaterOrEqual(t, cur, config.MinSpawnInterval)
		prev = cur
	}
}

func TestSpawnBuildsRocketTowardTarget(t *testing.T) {
	w, d, log := playingWorld()
	rng := &utils.SequenceRandom{Floats: []float64{0.25, 0.5}, Ints: []int{2}}
	s := NewSpawnSystem(w, rng, d)

	r := s.Update(0)
	require.NotNil(t, r)

	target := w.Cities[2].Position
	assert.Equal(t, 200.0, r.Position.X)
	assert.Equal(t, config.RocketSpawnY, r.Position.Y)
	assert.Equal(t, target, r.Target)
	assert.Equal(t, 1.0, r.Speed)
	assert.InDelta(t, math.Atan2(target.Y-r.Position.Y, target.X-r.Position.X), r.Angle, 1e-12)
	assert.Len(t, w.Rockets, 1)
	assert.Equal(t, 1, log.count(event.RocketSpawned))
}

func TestSpawnWaitsForInterval(t *testing.T) {
	w, d, _ := playingWorld()
	s := NewSpawnSystem(w, utils.NewPRNGService(3), d)

	require.NotNil(t, s.Update(10*time.Second), "first rocket of a run comes at once")
	assert.Nil(t, s.Update(11*time.Second))
	assert.Nil(t, s.Update(12*time.Second), "elapsed must exceed the interval, not equal it")
	assert.NotNil(t, s.Update(12*time.Second+time.Millisecond))
	assert.Len(t, w.Rockets, 2)
}

func TestSpawnIntervalShrinksWithScore(t *testing.T) {
	w, d, _ := playingWorld()
	s := NewSpawnSystem(w, utils.NewPRNGService(3), d)
	require.NotNil(t, s.Update(0))

	w.Score = 2000
	assert.NotNil(t, s.Update(501*time.Millisecond))
}

func TestSpawnWithoutTargetsIsNoop(t *testing.T) {
	w, d, log := playingWorld()
	for _, c := range w.Cities {
		c.Active = false
	}
	for _, tur := range w.Turrets {
		tur.Active = false
	}
	s := NewSpawnSystem(w, utils.NewPRNGService(3), d)

	assert.Nil(t, s.Update(time.Minute))
	assert.Empty(t, w.Rockets)
	assert.False(t, w.HasSpawned)
	assert.Zero(t, log.count(event.RocketSpawned))
}

func TestSpawnPicksTurretsToo(t *testing.T) {
	w, d, _ := playingWorld()
	// Индекс за последним городом - первая башня.
	rng := &utils.SequenceRandom{Ints: []int{len(w.Cities)}}
	s := NewSpawnSystem(w, rng, d)

	r := s.MaybeSpawn()
	require.NotNil(t, r)
	assert.Equal(t, w.Turrets[0].Position, r.Target)
}

func TestSpawnSpeedWithinBounds(t *testing.T) {
	w, d, _ := playingWorld()
	s := NewSpawnSystem(w, utils.NewPRNGService(11), d)
	for i := 0; i < 500; i++ {
		r := s.MaybeSpawn()
		require.NotNil(t, r)
		assert.GreaterOrEqual(t, r.Speed, config.RocketSpeedMin)
		assert.LessOrEqual(t, r.Speed, config.RocketSpeedMax)
		assert.GreaterOrEqual(t, r.Position.X, 0.0)
		assert.Less(t, r.Position.X, float64(config.GameWidth))
	}
}
