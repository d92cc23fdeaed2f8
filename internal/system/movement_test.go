package system

import (
	"math"
	"testing"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestRocketMovesAlongHeading(t *testing.T) {
	w, _, _ := playingWorld()
	angle := math.Pi / 3
	r := addRocket(w, component.Position{X: 100, Y: 0}, component.Position{X: 400, Y: 520}, 1.2, angle)
	s := NewPhysicsSystem(w)

	for i := 0; i < 10; i++ {
		s.Update()
	}

	assert.InDelta(t, 100+10*math.Cos(angle)*1.2, r.Position.X, 1e-9)
	assert.InDelta(t, 10*math.Sin(angle)*1.2, r.Position.Y, 1e-9)
	assert.Equal(t, component.Position{X: 400, Y: 520}, r.Target, "target never changes")
}

func TestRocketDistanceShrinksEveryStep(t *testing.T) {
	w, _, _ := playingWorld()
	start := component.Position{X: 700, Y: config.RocketSpawnY}
	target := w.Cities[0].Position
	r := addRocket(w, start, target, config.RocketSpeedMin, math.Atan2(target.Y-start.Y, target.X-start.X))
	s := NewPhysicsSystem(w)

	initial := start.DistanceTo(target)
	bound := int(math.Ceil(initial / config.RocketSpeedMin))
	prev := initial
	steps := 0
	for ; steps <= bound && r.Position.DistanceTo(target) >= config.RocketHitRange; steps++ {
		s.Update()
		d := r.Position.DistanceTo(target)
		assert.Less(t, d, prev)
		prev = d
	}
	assert.Less(t, r.Position.DistanceTo(target), config.RocketHitRange)
	assert.LessOrEqual(t, steps, bound)
}

func TestMissileProgressIsLinear(t *testing.T) {
	w, _, _ := playingWorld()
	m := &component.Missile{
		Start:    component.Position{X: 0, Y: 0},
		Target:   component.Position{X: 0, Y: -110},
		Distance: 110,
	}
	w.Missiles = append(w.Missiles, m)
	s := NewPhysicsSystem(w)

	s.Update()
	assert.InDelta(t, 0.05, m.Progress, 1e-12)
	assert.InDelta(t, -5.5, m.Position.Y, 1e-9)

	for i := 0; i < 19; i++ {
		s.Update()
	}
	assert.Equal(t, 1.0, m.Progress)
	assert.Equal(t, m.Target, m.Position)

	s.Update()
	assert.Equal(t, 1.0, m.Progress, "progress is clamped")
}

func TestZeroDistanceMissileCompletesImmediately(t *testing.T) {
	w, _, _ := playingWorld()
	p := component.Position{X: 60, Y: 550}
	m := &component.Missile{Start: p, Target: p, Position: p}
	w.Missiles = append(w.Missiles, m)

	NewPhysicsSystem(w).Update()

	assert.Equal(t, 1.0, m.Progress)
	assert.Equal(t, p, m.Position)
	assert.False(t, math.IsNaN(m.Position.X))
}
