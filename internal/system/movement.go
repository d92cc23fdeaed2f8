package system

import (
	"math"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
)

// PhysicsSystem двигает ракеты и перехватчики на один шаг.
type PhysicsSystem struct {
	world *entity.World
}

func NewPhysicsSystem(world *entity.World) *PhysicsSystem {
	return &PhysicsSystem{world: world}
}

func (s *PhysicsSystem) Update() {
	// Ракеты летят по прямой с постоянной скоростью, без наведения.
	for _, r := range s.world.Rockets {
		r.Position.X += math.Cos(r.Angle) * r.Speed
		r.Position.Y += math.Sin(r.Angle) * r.Speed
	}

	for _, m := range s.world.Missiles {
		m.Steps++
		if m.Distance <= 0 {
			// Выстрел в точку башни: подрыв на первом же шаге.
			m.Progress = 1
		} else {
			m.Progress = math.Min(1, float64(m.Steps)*config.MissileSpeed/m.Distance)
		}
		m.Position.X = m.Start.X + (m.Target.X-m.Start.X)*m.Progress
		m.Position.Y = m.Start.Y + (m.Target.Y-m.Start.Y)*m.Progress
	}
}
